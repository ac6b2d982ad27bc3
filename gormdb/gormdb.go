package gormdb

import (
	"gorm.io/gorm"
)

// Config returns the gorm configuration shared by every dialect. Driver
// errors are translated so that unique and foreign key violations surface
// as gorm.ErrDuplicatedKey and gorm.ErrForeignKeyViolated on any store.
func Config(l *Logger) *gorm.Config {
	cfg := &gorm.Config{TranslateError: true}
	if l != nil {
		cfg.Logger = l
	}
	return cfg
}

// AutoMigrate creates the movie and review tables from the models. The SQL
// files under migrations/ are used for PostgreSQL instead.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&MovieModel{}, &ReviewModel{})
}
