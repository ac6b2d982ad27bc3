package gormdb

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Logger implements gorm's logger.Interface on top of zap.
type Logger struct {
	log           *zap.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func NewLogger(log *zap.Logger) *Logger {
	return &Logger{
		log:           log.Named("gorm"),
		level:         logger.Warn,
		slowThreshold: 200 * time.Millisecond,
	}
}

func (l *Logger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *Logger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Info {
		l.log.Sugar().Infof(msg, data...)
	}
}

func (l *Logger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Warn {
		l.log.Sugar().Warnf(msg, data...)
	}
}

func (l *Logger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Error {
		l.log.Sugar().Errorf(msg, data...)
	}
}

func (l *Logger) Trace(_ context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{
		zap.String("sql", sql),
		zap.Int64("rows", rows),
		zap.Duration("elapsed", elapsed),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= logger.Error:
		l.log.Error("query failed", append(fields, zap.Error(err))...)
	case elapsed > l.slowThreshold && l.level >= logger.Warn:
		l.log.Warn("slow query", fields...)
	case l.level >= logger.Info:
		l.log.Debug("query", fields...)
	}
}
