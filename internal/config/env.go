package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Env holds process-level settings read from the environment before the
// Fyne app exists. Preferences saved in the app take priority over ServerURL.
type Env struct {
	ServerURL      string        `env:"ANIMAL_SOUNDS_SERVER_URL"      env-default:"http://127.0.0.1:5000"`
	RequestTimeout time.Duration `env:"ANIMAL_SOUNDS_REQUEST_TIMEOUT" env-default:"0s"`
	Log            LogConfig
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"text"`
}

// LoadEnv reads Env from environment variables and defaults.
func LoadEnv() (*Env, error) {
	var env Env
	if err := cleanenv.ReadEnv(&env); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := env.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &env, nil
}

// Validate checks the loaded values.
func (e *Env) Validate() error {
	if err := ValidateServerURL(e.ServerURL); err != nil {
		return err
	}
	if e.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative, got %s", e.RequestTimeout)
	}
	switch strings.ToLower(e.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log format must be json or text, got %q", e.Log.Format)
	}
	return nil
}

// ValidateServerURL requires an absolute http(s) URL with a host.
func ValidateServerURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("server URL is required")
	}

	parsedURL, err := url.Parse(raw)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if parsedURL.Host == "" {
		return fmt.Errorf("URL must include a host")
	}

	return nil
}
