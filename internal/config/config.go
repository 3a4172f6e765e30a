package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config holds runtime configuration for the backend.
//
// Values come from three layers, later layers winning:
//  1. built-in defaults
//  2. an optional YAML file (CONFIG_FILE, default "config.yaml" if present)
//  3. environment variables
type Config struct {
	// Port the HTTP server listens on.
	Port string `yaml:"port"`

	// DatabaseURL is the Postgres DSN. Required.
	DatabaseURL string `yaml:"database_url"`

	// AppEnv toggles production cookie settings ("production" => Secure cookies).
	AppEnv string `yaml:"app_env"`

	// SeedPath is the JSON file the user table is populated from.
	SeedPath string `yaml:"seed_path"`

	// FrontendDir is the directory of static assets served at the web root.
	FrontendDir string `yaml:"frontend_dir"`

	// ResetDB wipes and re-seeds the user table on startup when true.
	ResetDB bool `yaml:"reset_db"`
}

var ErrMissingDatabaseURL = errors.New("config: DATABASE_URL is required")

func defaults() Config {
	return Config{
		Port:        "8000",
		SeedPath:    "data/usuarios.json",
		FrontendDir: "frontend",
	}
}

// Load builds the configuration from defaults, the optional YAML file and the
// environment, in that order.
func Load() (Config, error) {
	cfg := defaults()

	path := os.Getenv("CONFIG_FILE")
	explicit := path != ""
	if path == "" {
		path = "config.yaml"
	}
	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	} else if explicit {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.AppEnv = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("SEED_PATH"); v != "" {
		cfg.SeedPath = v
	}
	if v := os.Getenv("FRONTEND_DIR"); v != "" {
		cfg.FrontendDir = v
	}
	if os.Getenv("RESET_DB") == "1" {
		cfg.ResetDB = true
	}

	return cfg, nil
}

// Validate checks that required settings are present.
func (c Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	return nil
}

// Production reports whether production cookie settings should apply.
func (c Config) Production() bool {
	return c.AppEnv == "production"
}
