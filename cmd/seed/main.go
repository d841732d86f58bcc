package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"newsroom/database"
	"newsroom/internal/config"
	"newsroom/internal/logger"
	"newsroom/internal/repository"
	"newsroom/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		_ = godotenv.Load("../../.env")
	}
}

func main() {
	articlesPath := flag.String("articles", "", "Path to a crawled articles JSON export")
	usersPath := flag.String("users", "", "Path to a users JSON export")
	flag.Parse()

	if *articlesPath == "" && *usersPath == "" {
		fmt.Fprintln(os.Stderr, "usage: seed -articles=articles.json -users=users.json")
		os.Exit(1)
	}

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	ctx := context.Background()

	if *usersPath != "" {
		n, err := utils.ImportUsers(ctx, *usersPath, repository.NewUserRepository(db), log)
		if err != nil {
			log.Fatal().Err(err).Msg("user import failed")
		}
		log.Info().Int("count", n).Msg("users imported")
	}

	if *articlesPath != "" {
		n, err := utils.ImportArticles(ctx, *articlesPath, repository.NewArticleRepository(db), log)
		if err != nil {
			log.Fatal().Err(err).Msg("article import failed")
		}
		log.Info().Int("count", n).Msg("articles imported")
	}
}
