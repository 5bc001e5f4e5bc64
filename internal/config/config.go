package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all server settings, populated from environment variables.
type Config struct {
	// DBDriver selects the relational backend: "mysql" or "postgres".
	DBDriver   string `env:"DB_DRIVER" envDefault:"mysql"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`
	DBUser     string `env:"DB_USER" envDefault:"timetrack"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"timetrack"`
	DBName     string `env:"DB_NAME" envDefault:"timesheet_api"`

	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// GinMode is passed to gin.SetMode ("debug", "release", "test").
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	// SeedData inserts development fixture rows after migration.
	SeedData bool `env:"SEED_DATA" envDefault:"false"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.DBDriver != "mysql" && cfg.DBDriver != "postgres" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}
