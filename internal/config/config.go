// Package config loads runtime settings from environment variables. The
// parsed Config is constructed once in main and passed down explicitly;
// nothing reads the environment after startup.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	SecretKey                string `env:"SECRET_KEY,required,notEmpty"`
	Algorithm                string `env:"ALGORITHM" envDefault:"HS256"`
	AccessTokenExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"30"`

	YandexClientID     string `env:"YANDEX_CLIENT_ID,required,notEmpty"`
	YandexClientSecret string `env:"YANDEX_CLIENT_SECRET,required,notEmpty"`
	YandexRedirectURI  string `env:"YANDEX_REDIRECT_URI,required,notEmpty"`

	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`
	Port        string `env:"PORT" envDefault:"8080"`
	UploadDir   string `env:"UPLOAD_DIR" envDefault:"uploads"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// AccessTokenTTL converts the configured lifetime in minutes to a Duration.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}
