// Package main seeds the database with a demo user and demo content.
//
// Existing data is left alone: the user is created only when missing and each
// item is skipped when the user already has content with the same title.
//
// Usage:
//
//	DATABASE_URL=postgres://... go run ./cmd/seed
//	go run ./cmd/seed -file ./seed.yaml
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"rebrain/internal/auth"
	"rebrain/internal/config"
	"rebrain/internal/db"
	"rebrain/internal/logger"
	"rebrain/internal/models"
	"rebrain/internal/service"
	"rebrain/internal/validation"
)

func main() {
	cfg := config.Load()
	seedFile := flag.String("file", cfg.SeedFile, "Path to the seed YAML file")
	flag.Parse()

	slog.SetDefault(logger.New(logger.Config{
		Format:      cfg.LogFormat,
		Environment: cfg.Env,
		Level:       logger.ParseLevel(cfg.LogLevel),
	}))

	if err := run(context.Background(), cfg, *seedFile); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
	slog.Info("seeding complete")
}

func run(ctx context.Context, cfg *config.Config, seedFile string) error {
	seed, err := config.LoadSeedConfig(seedFile)
	if err != nil {
		return err
	}

	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return err
	}

	accounts := service.NewAccounts(database, auth.NewPasswordHasher(cfg.BcryptCost))
	contents := service.NewContents(database)
	return seedBrain(ctx, accounts, contents, validation.New(), seed)
}

// seedBrain creates the demo user if missing and adds every item it does not
// already have.
func seedBrain(ctx context.Context, accounts *service.Accounts, contents *service.Contents, v *validation.Validator, seed *config.SeedConfig) error {
	user, created, err := accounts.EnsureUser(ctx, seed.User.Username, seed.User.Password)
	if err != nil {
		return err
	}
	if created {
		slog.Info("created demo user", "username", user.Username)
	} else {
		slog.Info("demo user exists", "username", user.Username)
	}

	for _, item := range seed.Content {
		if err := v.Validate(item); err != nil {
			slog.Warn("skipping invalid content", "title", item.Title, "error", err)
			continue
		}

		added, err := contents.AddIfMissing(ctx, user.ID, service.NewContent{
			Title: item.Title,
			Link:  item.Link,
			Type:  models.ContentType(item.Type),
			Tags:  item.Tags,
		})
		if err != nil {
			return err
		}
		if added {
			slog.Info("created demo content", "title", item.Title)
		} else {
			slog.Info("skipping existing content", "title", item.Title)
		}
	}

	return nil
}
