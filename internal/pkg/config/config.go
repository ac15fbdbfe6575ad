package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Session drivers.
const (
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Port     string `env:"PORT,      default=4200"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Backend BackendConfig
	Session SessionConfig
	Import  ImportConfig

	Mongo MongoConfig
	Redis RedisConfig
}

type BackendConfig struct {
	URL     string        `env:"BACKEND_URL,     default=http://localhost:8000"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT, default=15s"`
}

type SessionConfig struct {
	Driver    string `env:"SESSION_DRIVER,     default=file"`
	Dir       string `env:"SESSION_DIR"`
	KeyPrefix string `env:"SESSION_KEY_PREFIX, default=tedcar"`
}

type ImportConfig struct {
	Workers int `env:"IMPORT_WORKERS, default=4"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=tedcar_console"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cfg.Session.Driver = strings.ToLower(strings.TrimSpace(cfg.Session.Driver))
	switch cfg.Session.Driver {
	case DriverFile, DriverRedis, DriverMongo, DriverMemory:
	default:
		return nil, fmt.Errorf("config: unknown SESSION_DRIVER %q", cfg.Session.Driver)
	}

	if cfg.Session.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve home dir: %w", err)
		}
		cfg.Session.Dir = filepath.Join(home, ".tedcar")
	}
	return &cfg, nil
}

// Production reports whether the console runs with production defaults.
func (c *Config) Production() bool {
	return strings.EqualFold(c.Env, "production")
}
