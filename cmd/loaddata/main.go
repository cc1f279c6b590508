package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/avolkov/mediatheca/config"
	"github.com/avolkov/mediatheca/internal/jsonlog"
	"github.com/avolkov/mediatheca/repository"
	"github.com/avolkov/mediatheca/repository/postgres"
)

// loaddata replaces the database contents with the fixture data found in a
// directory of csv files. The reload is destructive: every table is truncated
// before its rows are imported, so the command is only for seeding
// development and test databases.
func main() {
	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	var cfg config.Config
	var dir string
	flag.StringVar(&cfg.Database.DSN, "db-dsn", os.Getenv("DSN"), "PostgreSQL DSN")
	flag.StringVar(&cfg.Database.MaxIdleTime, "db-max-idle-time", "15m", "PostgreSQL max connection idle time")
	flag.StringVar(&dir, "dir", "fixtures", "Directory holding the csv fixture files")
	flag.Parse()
	cfg.Database.MaxOpenConns = 5
	cfg.Database.MaxIdleConns = 5

	db, err := postgres.OpenDBConn(cfg)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	defer db.Close()
	logger.PrintInfo("database connection pool established", nil)

	repo := repository.New(db)

	users, err := parseUsers(filepath.Join(dir, "users.csv"))
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	err = repo.ReplaceUsers(users)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	logger.PrintInfo("loaded users", map[string]string{"count": count(len(users))})

	categories, err := parseCategories(filepath.Join(dir, "category.csv"))
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	err = repo.ReplaceCategories(categories)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	logger.PrintInfo("loaded categories", map[string]string{"count": count(len(categories))})

	genres, err := parseGenres(filepath.Join(dir, "genre.csv"))
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	err = repo.ReplaceGenres(genres)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	logger.PrintInfo("loaded genres", map[string]string{"count": count(len(genres))})

	titles, err := parseTitles(filepath.Join(dir, "titles.csv"))
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	links, err := parseTitleGenreLinks(filepath.Join(dir, "genre_title.csv"))
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	err = repo.ReplaceTitles(titles, links)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	logger.PrintInfo("loaded titles", map[string]string{"count": count(len(titles))})

	reviews, err := parseReviews(filepath.Join(dir, "review.csv"))
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	err = repo.ReplaceReviews(reviews)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	logger.PrintInfo("loaded reviews", map[string]string{"count": count(len(reviews))})

	comments, err := parseComments(filepath.Join(dir, "comments.csv"))
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	err = repo.ReplaceComments(comments)
	if err != nil {
		logger.PrintFatal(err, nil)
	}
	logger.PrintInfo("loaded comments", map[string]string{"count": count(len(comments))})
}
