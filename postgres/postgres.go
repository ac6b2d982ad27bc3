package postgres

import (
	"fmt"
	"moviereview/gormdb"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Options struct {
	DBName   string
	DBUser   string
	Password string
	Host     string
	Port     string
	SSLMode  bool

	// Logger receives gorm query logs. Nil keeps gorm's default logger.
	Logger *zap.Logger
}

// DSN builds a libpq style connection string usable by both pgx and lib/pq.
func DSN(opts Options) string {
	sslmode := "disable"
	if opts.SSLMode {
		sslmode = "require"
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		opts.Host, opts.Port, opts.DBUser, opts.Password, opts.DBName, sslmode,
	)
}

func NewConnection(opts Options) (*gorm.DB, error) {
	var l *gormdb.Logger
	if opts.Logger != nil {
		l = gormdb.NewLogger(opts.Logger)
	}

	return gorm.Open(postgres.Open(DSN(opts)), gormdb.Config(l))
}
