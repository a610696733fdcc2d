package main

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ndzibs/freight-site/internal/infrastructure/config"
	"github.com/ndzibs/freight-site/internal/infrastructure/db/seed"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:    "0",
		Storage: config.StorageConfig{Driver: config.DriverMemory},
		Seed:    config.SeedConfig{AdminUsername: "ops", AdminPassword: "s3cret"},
	}
}

func TestOpenStorage_MemoryIsSeeded(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()

	st, err := openStorage(ctx, cfg, seed.Admin{Username: "ops", Password: "s3cret"}, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(ctx) })

	services, err := st.Services().GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, services, len(seed.Services()))

	admin, err := st.Users().GetByUsername(ctx, "ops")
	require.NoError(t, err)
	require.Equal(t, "ops", admin.Username)
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Driver = "sqlite"

	_, err := openStorage(context.Background(), cfg, seed.DefaultAdmin, zerolog.Nop())
	require.ErrorContains(t, err, "unknown storage driver")
}

func TestRun_FailsWhenRedisUnreachable(t *testing.T) {
	cfg := testConfig()
	cfg.Redis.Addr = "127.0.0.1:1"

	err := run(context.Background(), cfg, zerolog.Nop())
	require.ErrorContains(t, err, "redis ping")
}
