// Seed replaces the career catalog from a JSON file. The catalog is
// managed out-of-band; the API never writes to it.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"go.uber.org/zap"

	"careerpath/pkg/career"
	"careerpath/pkg/config"
	"careerpath/pkg/logger"
	pgrepo "careerpath/pkg/repository/postgres"
	"careerpath/pkg/storage/postgres"
)

func main() {
	file := flag.String("file", "seed/careers.json", "path to the catalog seed file")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.Environment)
	defer func() { _ = log.Sync() }()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatal("read seed file", zap.Error(err))
	}
	var careers []career.Career
	if err := json.Unmarshal(data, &careers); err != nil {
		log.Fatal("parse seed file", zap.Error(err))
	}
	if len(careers) == 0 {
		log.Fatal("seed file contains no careers")
	}

	ctx := context.Background()
	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pool.Close()

	repo, err := pgrepo.NewCareerRepository(pool)
	if err != nil {
		log.Fatal("init career repo", zap.Error(err))
	}
	if err := repo.ReplaceAll(ctx, careers); err != nil {
		log.Fatal("replace catalog", zap.Error(err))
	}
	log.Info("catalog seeded", zap.Int("careers", len(careers)), zap.String("file", *file))
}
