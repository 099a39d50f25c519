package initializers

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	DBPath string `env:"PRAYERVAULT_DB_PATH" envDefault:"prayers.db"`
}

// LoadConfig parses the configuration from the environment. Call LoadEnv
// first if a .env file should be honored.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("environment variables are invalid: %w", err)
	}
	return &cfg, nil
}
