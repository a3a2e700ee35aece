package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" default:"development"`
	Port        string `env:"PORT" default:"8080"`
	DatabaseURL string `env:"DATABASE_URL"`

	SessionSecret string `env:"SESSION_SECRET"`
	EncryptionKey string `env:"ENCRYPTION_KEY"`

	WebAppURL    string `env:"WEBAPP_URL" default:"http://localhost:8080"`
	WebsiteURL   string `env:"WEBSITE_URL" default:"http://localhost:8080"`
	AuthEndpoint string `env:"AUTH_ENDPOINT"`

	GoogleLoginEnabled bool   `env:"GOOGLE_LOGIN_ENABLED" default:"false"`
	SAMLLoginEnabled   bool   `env:"SAML_LOGIN_ENABLED" default:"false"`
	SAMLTenantID       string `env:"SAML_TENANT_ID"`
	SAMLProductID      string `env:"SAML_PRODUCT_ID"`
	SignupDisabled     bool   `env:"SIGNUP_DISABLED" default:"false"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	SessionMaxAge time.Duration `env:"SESSION_MAX_AGE" default:"168h"` // 7 days
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	required := map[string]string{
		"DATABASE_URL":   cfg.DatabaseURL,
		"SESSION_SECRET": cfg.SessionSecret,
		"ENCRYPTION_KEY": cfg.EncryptionKey,
		"AUTH_ENDPOINT":  cfg.AuthEndpoint,
	}
	for name, value := range required {
		if value == "" {
			return fmt.Errorf("%s is required", name)
		}
	}

	if len(cfg.EncryptionKey) < 32 {
		return fmt.Errorf("ENCRYPTION_KEY must be at least 32 characters, got %d", len(cfg.EncryptionKey))
	}

	for name, value := range map[string]string{
		"WEBAPP_URL":    cfg.WebAppURL,
		"WEBSITE_URL":   cfg.WebsiteURL,
		"AUTH_ENDPOINT": cfg.AuthEndpoint,
	} {
		if _, err := url.ParseRequestURI(value); err != nil {
			return fmt.Errorf("%s must be a valid URL: %w", name, err)
		}
	}

	if cfg.SAMLLoginEnabled && (cfg.SAMLTenantID == "" || cfg.SAMLProductID == "") {
		return fmt.Errorf("SAML_TENANT_ID and SAML_PRODUCT_ID are required when SAML_LOGIN_ENABLED is set")
	}

	return nil
}
