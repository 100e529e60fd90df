// Package config reads the runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/nremp/dashboard/pkg/messages"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

// developmentSecret signs ID tokens in debug mode when TOKEN_SECRET is not set.
const developmentSecret = "insecure-development-secret"

// Config is the runtime configuration.
type Config struct {
	LogFormat     string  `env:"LOG_FORMAT"`
	GinMode       string  `env:"GIN_MODE" envDefault:"release"`
	APIURL        url.URL `env:"API_URL" envDefault:"http://localhost:8080"`
	ListenAddress string  `env:"LISTEN_ADDRESS" envDefault:":8080"`
	DatabasePath  string  `env:"DATABASE_PATH" envDefault:"data/dashboard.db"`

	// Email that gets the admin role when signing in for the first time
	BootstrapAdminEmail string `env:"BOOTSTRAP_ADMIN_EMAIL"`

	TokenSecret string        `env:"TOKEN_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// The mocked inventory is used when FleetAPIURL is empty
	FleetAPIURL    string        `env:"FLEET_API_URL"`
	FleetAPIToken  string        `env:"FLEET_API_TOKEN"`
	FleetAPIKey    string        `env:"FLEET_API_KEY"`
	FleetMockDelay time.Duration `env:"FLEET_MOCK_DELAY" envDefault:"0s"`

	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envSeparator:" "`
	EnablePprof      bool     `env:"ENABLE_PPROF"`
	DefaultLanguage  string   `env:"DEFAULT_LANGUAGE" envDefault:"pt-BR"`
}

// Load reads the .env files, if they exist, and parses the environment.
// Variables that are already set are not overridden by .env files.
func Load(filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.TokenSecret == "" {
		if cfg.GinMode == "release" {
			return Config{}, errors.New("TOKEN_SECRET must be set in release mode")
		}

		log.Warn().Msg("TOKEN_SECRET is not set, using an insecure development secret")
		cfg.TokenSecret = developmentSecret
	}

	if _, ok := messages.Parse(cfg.DefaultLanguage); !ok {
		return Config{}, fmt.Errorf("unsupported DEFAULT_LANGUAGE %q", cfg.DefaultLanguage)
	}

	if cfg.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}

	return cfg, nil
}

// Language returns the default language.
func (c Config) Language() language.Tag {
	tag, _ := messages.Parse(c.DefaultLanguage)
	return tag
}
