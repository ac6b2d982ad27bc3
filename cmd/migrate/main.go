package main

import (
	"database/sql"
	"moviereview/pkg/config"
	"moviereview/pkg/logger"
	"moviereview/postgres"
	"strconv"

	"github.com/alecthomas/kong"
	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
)

type CLI struct {
	Dir string `help:"Directory holding the migration files." default:"migrations" type:"existingdir"`

	Up   UpCmd   `cmd:"" default:"1" help:"Apply pending migrations."`
	Down DownCmd `cmd:"" help:"Roll back applied migrations."`
}

type UpCmd struct{}

type DownCmd struct {
	Steps int `help:"Number of migrations to roll back (0 = all)." default:"1"`
}

type runContext struct {
	db     *sql.DB
	source migrate.MigrationSource
	log    *zap.Logger
}

func (UpCmd) Run(rc *runContext) error {
	total, err := migrate.Exec(rc.db, "postgres", rc.source, migrate.Up)
	if err != nil {
		return err
	}
	rc.log.Info("applied migrations", zap.Int("total", total))
	return nil
}

func (c DownCmd) Run(rc *runContext) error {
	total, err := migrate.ExecMax(rc.db, "postgres", rc.source, migrate.Down, c.Steps)
	if err != nil {
		return err
	}
	rc.log.Info("rolled back migrations", zap.Int("total", total))
	return nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("migrate"),
		kong.Description("Manage the movie review PostgreSQL schema."),
	)

	cfg, err := config.LoadConfig()
	kctx.FatalIfErrorf(err)

	log := logger.New(logger.Options{AppEnv: cfg.AppEnv, File: cfg.LogFile})
	defer func() { _ = log.Sync() }()

	if cfg.DB.Driver != config.DriverPostgres {
		log.Fatal("migrations only target postgres; sqlite schemas are created on connect",
			zap.String("driver", cfg.DB.Driver))
	}

	db, err := sql.Open("postgres", postgres.DSN(postgres.Options{
		DBName:   cfg.DB.Name,
		DBUser:   cfg.DB.User,
		Password: cfg.DB.Pass,
		Host:     cfg.DB.Host,
		Port:     strconv.Itoa(cfg.DB.Port),
		SSLMode:  cfg.DB.EnableSSL,
	}))
	if err != nil {
		log.Fatal("cannot connect to db", zap.Error(err))
	}
	defer db.Close()

	err = kctx.Run(&runContext{
		db:     db,
		source: &migrate.FileMigrationSource{Dir: cli.Dir},
		log:    log,
	})
	if err != nil {
		log.Fatal("cannot execute migration", zap.Error(err))
	}
}
