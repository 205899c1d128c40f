package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	// DevAPIURL — адрес API для разработки
	DevAPIURL = "http://localhost:5000"
	// ProdAPIURL — боевой адрес API
	ProdAPIURL = "https://api.gocial.app"
)

// Config — конфигурация клиента из переменных окружения
type Config struct {
	// APIURL переопределяет базовый адрес API; пустое значение
	// означает выбор по Env
	APIURL string `env:"GOCIAL_API_URL"`

	// Timeout — таймаут каждого HTTP запроса
	Timeout time.Duration `env:"GOCIAL_TIMEOUT,default=15s"`

	// DBPath — путь к локальной базе credentials
	DBPath string `env:"GOCIAL_DB,default=gocial.db"`

	// Env — окружение: development | production
	Env string `env:"GOCIAL_ENV,default=development"`
}

// Load читает конфигурацию из окружения и доопределяет базовый адрес
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if cfg.APIURL == "" {
		if cfg.Env == "production" {
			cfg.APIURL = ProdAPIURL
		} else {
			cfg.APIURL = DevAPIURL
		}
	}

	return &cfg, nil
}
