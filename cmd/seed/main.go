// Command seed loads notification type records into the DynamoDB table
// from a JSON file. The API itself is read-only, so catalog records are
// maintained out of band with this tool.
//
// Usage:
//
//	seed -file seed.json [-force]
//
// Existing keys are skipped unless -force is given.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/notification-types-api/internal/config"
	"github.com/notification-types-api/internal/domain"
	"github.com/notification-types-api/internal/infrastructure/dynamo"
)

func main() {
	file := flag.String("file", "seed.json", "path to the JSON seed file")
	force := flag.Bool("force", false, "overwrite records whose key already exists")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, reading from environment")
	}

	cfg := config.Load()

	data, err := os.ReadFile(*file)
	if err != nil {
		slog.Error("read seed file", "file", *file, "err", err)
		os.Exit(1)
	}
	var types []domain.NotificationType
	if err := json.Unmarshal(data, &types); err != nil {
		slog.Error("parse seed file", "file", *file, "err", err)
		os.Exit(1)
	}

	client := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), client, cfg.DynamoTableNotificationTypes)
	repo := dynamo.NewNotificationTypeRepo(client, cfg.DynamoTableNotificationTypes)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var written, skipped int
	for i := range types {
		nt := &types[i]
		if nt.Key == "" {
			slog.Error("record without key", "index", i)
			os.Exit(1)
		}

		if !*force {
			_, err := repo.Get(ctx, nt.Key)
			switch {
			case err == nil:
				slog.Info("skipping existing record", "key", nt.Key)
				skipped++
				continue
			case !errors.Is(err, domain.ErrNotFound):
				slog.Error("check existing record", "key", nt.Key, "err", err)
				os.Exit(1)
			}
		}

		now := time.Now().UTC()
		if nt.CreatedAt == nil {
			nt.CreatedAt = &now
		}
		nt.UpdatedAt = &now

		if err := repo.Put(ctx, nt); err != nil {
			slog.Error("put record", "key", nt.Key, "err", err)
			os.Exit(1)
		}
		written++
	}

	slog.Info("seed complete", "written", written, "skipped", skipped)
}
