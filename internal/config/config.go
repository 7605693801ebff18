package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const devSessionKey = "dev-insecure"

type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	AppEnv  string `env:"APP_ENV" envDefault:"development"`
	// vacío: se arma con los headers del pedido
	BaseURL string `env:"BASE_URL"`

	// vacío: el catálogo no se replica en la base
	DBDSN string `env:"DB_DSN"`

	CatalogFile  string `env:"CATALOG_FILE"`
	CatalogLimit int    `env:"CATALOG_LIMIT" envDefault:"0"`

	OpenAIKey     string `env:"OPENAI_API_KEY"`
	OpenAIModel   string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`

	SessionKey   string `env:"SESSION_KEY"`
	AdminToken   string `env:"ADMIN_TOKEN"`
	RateLimitRPM int    `env:"RATE_LIMIT_RPM" envDefault:"120"`
}

// Load lee .env si existe y después las variables de entorno.
func Load() (*Config, error) {
	_ = godotenv.Load()
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.CatalogLimit < 0 {
		return nil, fmt.Errorf("config: CATALOG_LIMIT negativo")
	}
	if cfg.SessionKey == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("config: SESSION_KEY requerido fuera de development")
		}
		cfg.SessionKey = devSessionKey
	}
	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	e := strings.ToLower(c.AppEnv)
	return e == "" || e == "development" || e == "dev"
}
