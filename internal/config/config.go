package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Generador de Facturas"`
		Host string `envconfig:"HOST" default:"localhost"`
		Port uint   `envconfig:"PORT" default:"3000"`
	}

	Session struct {
		TTL time.Duration `envconfig:"SESSION_TTL" default:"2h"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
