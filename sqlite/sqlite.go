package sqlite

import (
	"fmt"
	"moviereview/gormdb"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Options struct {
	// Path is a file path or an sqlite URI such as
	// "file:reviews?mode=memory&cache=shared".
	Path string

	// Logger receives gorm query logs. Nil keeps gorm's default logger.
	Logger *zap.Logger
}

// NewConnection opens the database with foreign keys enforced and creates
// the schema when it is missing.
func NewConnection(opts Options) (*gorm.DB, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}

	var l *gormdb.Logger
	if opts.Logger != nil {
		l = gormdb.NewLogger(opts.Logger)
	}

	db, err := gorm.Open(sqlite.Open(dsn(opts.Path)), gormdb.Config(l))
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite: get db instance: %w", err)
	}
	// sqlite allows a single writer at a time.
	sqlDB.SetMaxOpenConns(1)

	if err := gormdb.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("sqlite: migrate: %w", err)
	}

	return db, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}
