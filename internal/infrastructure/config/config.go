package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Storage drivers accepted by STORAGE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	Port      string `env:"PORT,      default=5000"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	JWTSecret string `env:"JWT_SECRET"`

	// AdminAuthEnabled guards /api/admin/* with a JWT and the admin role.
	AdminAuthEnabled bool          `env:"ADMIN_AUTH_ENABLED, default=false"`
	TokenTTL         time.Duration `env:"TOKEN_TTL,          default=24h"`

	// CORSOrigins is a comma separated allow list; "*" allows any origin.
	CORSOrigins string `env:"CORS_ORIGINS, default=*"`
	// ContactRateLimit is the sustained requests per second per client IP
	// on POST /api/contact. Zero disables the limiter.
	ContactRateLimit float64 `env:"CONTACT_RATE_LIMIT, default=1"`

	Storage StorageConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Seed    SeedConfig
}

type StorageConfig struct {
	Driver      string `env:"STORAGE_DRIVER, default=memory"`
	DatabaseURL string `env:"DATABASE_URL"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=freight_site"`
}

type RedisConfig struct {
	// Addr is empty by default, which disables contact dedup.
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,          default=0"`
	DedupTTL time.Duration `env:"CONTACT_DEDUP_TTL, default=10m"`
}

type SeedConfig struct {
	// Defaults seeds durable drivers when their tables are empty. The memory
	// driver is always seeded.
	Defaults      bool   `env:"SEED_DEFAULTS,        default=false"`
	AdminUsername string `env:"SEED_ADMIN_USERNAME, default=admin"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=admin123"`
}

// Load reads configuration from environment variables using go-envconfig
// and validates it.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate enforces the driver specific requirements.
func (c *Config) Validate() error {
	var errs []error

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Storage.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when STORAGE_DRIVER=postgres"))
		}
	case DriverMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" {
			errs = append(errs, errors.New("MONGO_URI and MONGO_DB are required when STORAGE_DRIVER=mongo"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver))
	}

	if c.AdminAuthEnabled && c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required when ADMIN_AUTH_ENABLED=true"))
	}
	if c.ContactRateLimit < 0 {
		errs = append(errs, errors.New("CONTACT_RATE_LIMIT must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// AllowedOrigins splits CORSOrigins into a list.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
