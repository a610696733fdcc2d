// Command server runs the freight site API.
//
//	@title						Freight Site API
//	@version					1.0
//	@description				Content, catalog and contact API for the freight forwarding marketing site.
//	@BasePath					/api
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ndzibs/freight-site/internal/api/handler"
	"github.com/ndzibs/freight-site/internal/app"
	"github.com/ndzibs/freight-site/internal/core/ports"
	"github.com/ndzibs/freight-site/internal/infrastructure/config"
	"github.com/ndzibs/freight-site/internal/infrastructure/db/memory"
	mongostore "github.com/ndzibs/freight-site/internal/infrastructure/db/mongo"
	"github.com/ndzibs/freight-site/internal/infrastructure/db/postgres"
	redisstore "github.com/ndzibs/freight-site/internal/infrastructure/db/redis"
	"github.com/ndzibs/freight-site/internal/infrastructure/db/seed"
	httpserver "github.com/ndzibs/freight-site/internal/infrastructure/http"
	"github.com/ndzibs/freight-site/pkg/logger"
)

const closeTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "freight-site",
		Env:     cfg.Env,
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	admin := seed.Admin{Username: cfg.Seed.AdminUsername, Password: cfg.Seed.AdminPassword}

	storage, err := openStorage(ctx, cfg, admin, log)
	if err != nil {
		return err
	}
	defer closeStorage(storage, log)
	log.Info().Str("driver", cfg.Storage.Driver).Msg("storage ready")

	deps := app.Deps{Storage: storage}
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()

		deps.Guard = redisstore.NewSubmissionGuard(rdb, cfg.Redis.DedupTTL)
		deps.Cache = handler.PingFunc(redisstore.Ping(rdb))
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.DedupTTL).Msg("contact dedup enabled")
	}

	e := app.New(cfg, deps, log)
	return httpserver.Run(ctx, e, ":"+cfg.Port, log)
}

// openStorage connects the backend selected by STORAGE_DRIVER. Durable
// backends are migrated and, when SEED_DEFAULTS is set, seeded.
func openStorage(ctx context.Context, cfg *config.Config, admin seed.Admin, log zerolog.Logger) (ports.Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		st, err := memory.New(ctx, admin, log)
		if err != nil {
			return nil, err
		}
		return st, nil

	case config.DriverPostgres:
		if err := postgres.Migrate(ctx, cfg.Storage.DatabaseURL); err != nil {
			return nil, fmt.Errorf("postgres migrate: %w", err)
		}
		db, err := postgres.New(ctx, cfg.Storage.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return seedIfEnabled(ctx, cfg, postgres.NewStorage(db), admin, log)

	case config.DriverMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		st := mongostore.NewStorage(client, db)
		if err := st.EnsureIndexes(ctx); err != nil {
			_ = st.Close(ctx)
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		return seedIfEnabled(ctx, cfg, st, admin, log)
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

func seedIfEnabled(ctx context.Context, cfg *config.Config, st ports.Storage, admin seed.Admin, log zerolog.Logger) (ports.Storage, error) {
	if !cfg.Seed.Defaults {
		return st, nil
	}
	if err := seed.Apply(ctx, st, admin, log); err != nil {
		_ = st.Close(ctx)
		return nil, err
	}
	return st, nil
}

func closeStorage(st ports.Storage, log zerolog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()
	if err := st.Close(ctx); err != nil {
		log.Error().Err(err).Msg("closing storage")
	}
}
