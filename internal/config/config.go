// Package config loads the small configuration surface of the tracker:
// server port, data directory and log level. Values come from defaults, an
// optional .env file, and ADAY_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int
}

type StorageConfig struct {
	DataDir string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server:  ServerConfig{Port: 4780},
		Storage: StorageConfig{DataDir: defaultDataDir()},
		Log:     LogConfig{Level: "info"},
	}
}

// defaultDataDir resolves to $XDG_DATA_HOME/adaytakip, falling back to
// ~/.local/share/adaytakip, or a relative directory when no home is known.
func defaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "adaytakip")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "adaytakip-data"
	}
	return filepath.Join(home, ".local", "share", "adaytakip")
}

// Load builds the configuration. A missing .env file is not an error.
func Load() (Config, error) {
	godotenv.Load()

	cfg := defaults()
	applyEnvOverrides(&cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if raw := os.Getenv("ADAY_SERVER_PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			cfg.Server.Port = port
		} else {
			fmt.Fprintf(os.Stderr, "[WARN] could not parse integer from ADAY_SERVER_PORT=%q: %v. Using default value.\n", raw, err)
		}
	}
	if dir := os.Getenv("ADAY_DATA_DIR"); dir != "" {
		cfg.Storage.DataDir = dir
	}
	if level := os.Getenv("ADAY_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
}
