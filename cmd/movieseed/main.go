package main

import (
	"archive/zip"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"moviereview/gormdb"
	"moviereview/movie"
	"moviereview/pkg/config"
	"moviereview/pkg/logger"
	"moviereview/postgres"
	"moviereview/sqlite"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultMovieLensURL = "https://files.grouplens.org/datasets/movielens/ml-latest-small.zip"

const batchSize = 500

type CLI struct {
	CSV   string `help:"Path to movies.csv (skips the download)." type:"existingfile"`
	URL   string `help:"MovieLens zip URL." default:"${movielens_url}"`
	Limit int    `help:"Limit number of rows to import (0 = all)."`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("movieseed"),
		kong.Description("Import MovieLens movies. Titles that already exist are skipped."),
		kong.Vars{"movielens_url": defaultMovieLensURL},
	)

	cfg, err := config.LoadConfig()
	kctx.FatalIfErrorf(err)

	log := logger.New(logger.Options{AppEnv: cfg.AppEnv, File: cfg.LogFile})
	defer func() { _ = log.Sync() }()

	db, err := openDatabase(cfg, log)
	if err != nil {
		log.Fatal("cannot open database connection", zap.Error(err))
	}

	csvPath := cli.CSV
	if csvPath == "" {
		path, cleanup, err := downloadAndExtract(cli.URL)
		if err != nil {
			log.Fatal("failed to download dataset", zap.String("url", cli.URL), zap.Error(err))
		}
		defer cleanup()
		csvPath = path
	}

	movies, err := readMovies(csvPath, cli.Limit)
	if err != nil {
		log.Fatal("failed to read movies", zap.String("path", csvPath), zap.Error(err))
	}

	svc := movie.NewUsecase(gormdb.NewMovieRepository(db))
	inserted, err := importMovies(context.Background(), svc, movies)
	if err != nil {
		log.Fatal("import failed", zap.Int("inserted", inserted), zap.Error(err))
	}

	log.Info("import completed", zap.Int("rows", len(movies)), zap.Int("inserted", inserted))
}

func openDatabase(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	if cfg.DB.Driver == config.DriverSQLite {
		return sqlite.NewConnection(sqlite.Options{Path: cfg.DB.Name, Logger: log})
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

// importMovies feeds the bulk add in batches and returns how many were new.
func importMovies(ctx context.Context, svc movie.Service, movies []movie.Movie) (int, error) {
	inserted := 0
	for start := 0; start < len(movies); start += batchSize {
		end := min(start+batchSize, len(movies))
		created, err := svc.AddMovies(ctx, movies[start:end])
		if err != nil {
			return inserted, err
		}
		inserted += len(created)
	}
	return inserted, nil
}

func downloadAndExtract(zipURL string) (string, func(), error) {
	if zipURL == "" {
		return "", func() {}, errors.New("dataset url is empty")
	}

	tmpDir, err := os.MkdirTemp("", "movielens-")
	if err != nil {
		return "", func() {}, err
	}

	cleanup := func() {
		_ = os.RemoveAll(tmpDir)
	}

	zipPath := filepath.Join(tmpDir, "dataset.zip")
	if err := downloadFile(zipURL, zipPath); err != nil {
		cleanup()
		return "", func() {}, err
	}

	csvPath, err := extractMoviesCSV(zipPath, tmpDir)
	if err != nil {
		cleanup()
		return "", func() {}, err
	}

	return csvPath, cleanup, nil
}

func downloadFile(url, dest string) error {
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Get(url) // nolint: noctx
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, resp.Body)
	return err
}

func extractMoviesCSV(zipPath, destDir string) (string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	for _, file := range r.File {
		if filepath.Base(file.Name) != "movies.csv" {
			continue
		}

		src, err := file.Open()
		if err != nil {
			return "", err
		}
		defer src.Close()

		destPath := filepath.Join(destDir, "movies.csv")
		out, err := os.Create(destPath)
		if err != nil {
			return "", err
		}

		if _, err := io.Copy(out, src); err != nil {
			_ = out.Close()
			return "", err
		}
		if err := out.Close(); err != nil {
			return "", err
		}

		return destPath, nil
	}

	return "", errors.New("movies.csv not found in zip")
}

func readMovies(csvPath string, limit int) ([]movie.Movie, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return parseMovies(file, limit)
}

func parseMovies(r io.Reader, limit int) ([]movie.Movie, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	idxTitle, idxGenres, err := parseMovieCSVHeader(reader)
	if err != nil {
		return nil, err
	}

	var movies []movie.Movie
	for limit <= 0 || len(movies) < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		m, ok := parseMovieRecord(record, idxTitle, idxGenres)
		if !ok {
			continue
		}
		movies = append(movies, m)
	}

	return movies, nil
}

func parseMovieCSVHeader(reader *csv.Reader) (int, int, error) {
	header, err := reader.Read()
	if err != nil {
		return 0, 0, err
	}

	idxTitle, idxGenres := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "title":
			idxTitle = i
		case "genres":
			idxGenres = i
		}
	}
	if idxTitle == -1 || idxGenres == -1 {
		return 0, 0, errors.New("missing required columns in csv header")
	}

	return idxTitle, idxGenres, nil
}

// parseMovieRecord turns MovieLens "Action|Comedy" genres into "Action, Comedy".
func parseMovieRecord(record []string, idxTitle, idxGenres int) (movie.Movie, bool) {
	if idxTitle >= len(record) || idxGenres >= len(record) {
		return movie.Movie{}, false
	}

	title := strings.TrimSpace(record[idxTitle])
	if title == "" {
		return movie.Movie{}, false
	}
	genre := strings.ReplaceAll(strings.TrimSpace(record[idxGenres]), "|", ", ")
	return movie.Movie{Title: title, Genre: genre}, true
}
