package app

import (
	"context"
	"log"
	"time"

	"internhub/internal/config"
	"internhub/internal/database"
	dbpostgres "internhub/internal/database/postgres"
	"internhub/internal/domain/application"
	"internhub/internal/domain/file"
	"internhub/internal/domain/job"
	"internhub/internal/domain/user"
	"internhub/internal/infrastructure/cache"
	"internhub/internal/repository"
)

// Container owns the pool and the repositories built on it. Repositories
// are stateless; the pool is the only shared resource.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Logger *log.Logger

	Users        user.Repository
	Jobs         job.Repository
	Applications application.Repository
	Files        file.Repository
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := NewContainerWithDB(cfg, db, logger)
	if cfg.Cache.Enabled {
		c.Cache = cache.NewRedis(cfg.Cache, logger)
		c.Jobs = repository.NewCachedJobRepository(c.Jobs, c.Cache, cfg.Cache.TTL, logger)
	}
	return c, nil
}

func NewContainerWithDB(cfg config.Config, db database.DB, logger *log.Logger) *Container {
	return &Container{
		Config:       cfg,
		DB:           db,
		Logger:       logger,
		Users:        repository.NewPostgresUserRepository(db),
		Jobs:         repository.NewPostgresJobRepository(db),
		Applications: repository.NewPostgresApplicationRepository(db),
		Files:        repository.NewPostgresFileRepository(db),
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
