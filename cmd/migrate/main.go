package main

import (
	"context"
	"flag"
	"log"
	"time"

	"internhub/internal/app"
	"internhub/internal/config"
	"internhub/internal/database/migration"
	"internhub/internal/database/seeder"
	"internhub/internal/repository"
)

func main() {
	seed := flag.Bool("seed", false, "insert demo users, jobs and an application after migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.Default()
	c, err := app.NewContainer(cfg, logger)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	r := migration.Runner{Dir: cfg.MigrationsDir, Logger: logger}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if !*seed {
		return
	}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), time.Minute)
	defer seedCancel()
	s := seeder.Runner{Seeders: seeder.Defaults(), Logger: logger}
	if err := s.Run(seedCtx, c.DB); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	// seeders write through uncached repositories
	if c.Cache != nil {
		if err := repository.InvalidateJobPages(seedCtx, c.Cache); err != nil {
			log.Printf("[Cache] job page invalidation failed: %v", err)
		}
	}
}
