package main

import (
	"context"
	"errors"
	"fmt"
	"moviereview/gormdb"
	"moviereview/httpserver"
	"moviereview/movie"
	"moviereview/pkg/config"
	"moviereview/pkg/logger"
	"moviereview/pkg/sentry"
	"moviereview/postgres"
	"moviereview/review"
	"moviereview/sqlite"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Cannot load config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{AppEnv: cfg.AppEnv, File: cfg.LogFile})
	defer func() { _ = log.Sync() }()

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatal("Cannot init sentry", zap.Error(err))
	}
	defer sentrygo.Flush(sentry.FlushTime)

	db, err := openDatabase(cfg, log)
	if err != nil {
		sentry.Fatal(err)
		log.Fatal("Cannot open database connection", zap.String("driver", cfg.DB.Driver), zap.Error(err))
	}

	server := httpserver.Default(cfg)
	server.Logger = log
	server.MovieService = movie.NewUsecase(gormdb.NewMovieRepository(db))
	server.ReviewService = review.NewUsecase(gormdb.NewReviewRepository(db))

	go func() {
		log.Info("server started", zap.String("addr", server.Addr), zap.String("driver", cfg.DB.Driver))
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped with error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}

func openDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	if cfg.DB.Driver == config.DriverSQLite {
		return sqlite.NewConnection(sqlite.Options{
			Path:   cfg.DB.Name,
			Logger: log,
		})
	}

	return postgres.NewConnection(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     fmt.Sprintf("%d", cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
		Logger:   log,
	})
}
