package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=3000"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Catalog CatalogConfig
	Redis   RedisConfig
}

// CatalogConfig points at the external character catalog.
type CatalogConfig struct {
	URL            string `env:"CATALOG_URL,             default=https://valorant-api.com"`
	TimeoutSeconds int    `env:"CATALOG_TIMEOUT_SECONDS, default=10"`
}

// RedisConfig is optional: an empty Addr disables Redis entirely and the
// service runs on in-process storage alone.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
