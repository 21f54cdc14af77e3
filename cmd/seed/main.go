package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/influenzerflow/backend/internal/config"
	"github.com/influenzerflow/backend/internal/db"
	"github.com/influenzerflow/backend/internal/models"
	"github.com/influenzerflow/backend/internal/repositories"
	"go.uber.org/zap"
)

// Loads creator catalog rows from a JSON file. The API never writes creators;
// this is the only ingestion path.
func main() {
	file := flag.String("file", "seed/creators.json", "path to creators JSON file")
	flag.Parse()

	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal("failed to read seed file", zap.String("file", *file), zap.Error(err))
	}

	var creators []models.Creator
	if err := json.Unmarshal(data, &creators); err != nil {
		log.Fatal("failed to parse seed file", zap.Error(err))
	}

	creatorRepo := repositories.NewCreatorRepo(pool)
	inserted := 0
	for i := range creators {
		if err := creatorRepo.Create(ctx, &creators[i]); err != nil {
			log.Warn("failed to insert creator",
				zap.String("display_name", creators[i].DisplayName), zap.Error(err))
			continue
		}
		inserted++
	}

	log.Info("seed complete", zap.Int("inserted", inserted), zap.Int("total", len(creators)))
}
