package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("expected default port 5000, got %s", cfg.Port)
	}
	if cfg.Storage.Driver != DriverMemory {
		t.Errorf("expected memory driver, got %s", cfg.Storage.Driver)
	}
	if cfg.AdminAuthEnabled {
		t.Errorf("admin auth must be off by default")
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("redis must be disabled by default, got %q", cfg.Redis.Addr)
	}
	if cfg.Redis.DedupTTL != 10*time.Minute {
		t.Errorf("unexpected dedup ttl: %s", cfg.Redis.DedupTTL)
	}
}

func TestLoad_PostgresRequiresDatabaseURL(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"STORAGE_DRIVER": DriverPostgres,
	}))
	if err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Fatalf("expected DATABASE_URL error, got %v", err)
	}

	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"STORAGE_DRIVER": DriverPostgres,
		"DATABASE_URL":   "postgres://localhost/site",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Storage.DatabaseURL != "postgres://localhost/site" {
		t.Errorf("unexpected url: %s", cfg.Storage.DatabaseURL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"unknown driver", func(c *Config) { c.Storage.Driver = "sqlite" }, "unknown STORAGE_DRIVER"},
		{"auth without secret", func(c *Config) { c.AdminAuthEnabled = true }, "JWT_SECRET"},
		{"negative rate", func(c *Config) { c.ContactRateLimit = -1 }, "CONTACT_RATE_LIMIT"},
		{"mongo without db", func(c *Config) { c.Storage.Driver = DriverMongo; c.Mongo.Database = "" }, "MONGO_DB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				Storage: StorageConfig{Driver: DriverMemory},
				Mongo:   MongoConfig{URI: "mongodb://localhost", Database: "site"},
			}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAllowedOrigins(t *testing.T) {
	cfg := Config{CORSOrigins: "https://site.example, https://admin.example ,"}
	got := cfg.AllowedOrigins()
	if len(got) != 2 || got[0] != "https://site.example" || got[1] != "https://admin.example" {
		t.Fatalf("unexpected origins: %v", got)
	}
}
