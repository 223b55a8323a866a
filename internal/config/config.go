package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	StatePath string `yaml:"state_path"`
	Backend   string `yaml:"backend"` // file or sqlite
	Output    string `yaml:"output"`
	LogLevel  string `yaml:"log_level"`
	UserID    string `yaml:"user_id"`
}

// Load loads configuration from multiple sources with precedence:
// 1. Environment variables
// 2. ./.env.local (dotenv) - walks up parent directories to find it
// 3. ~/.config/evq/config.yaml (YAML)
func Load() (*Config, error) {
	cfg := &Config{
		Backend:  "file",
		Output:   "table",
		LogLevel: "info",
	}

	// Load .env.local if it exists (walking up parent directories)
	if envPath := findEnvLocal(); envPath != "" {
		_ = godotenv.Load(envPath)
	}

	// YAML config is optional
	if err := loadYAMLConfig(cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	// Override with environment variables
	if statePath := getEnvOrFile("EVQ_STATE_PATH", "EVQ_STATE_PATH_FILE"); statePath != "" {
		cfg.StatePath = statePath
	}
	if backend := os.Getenv("EVQ_BACKEND"); backend != "" {
		cfg.Backend = backend
	}
	if output := os.Getenv("EVQ_OUTPUT"); output != "" {
		cfg.Output = output
	}
	if logLevel := os.Getenv("EVQ_LOG_LEVEL"); logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if userID := os.Getenv("EVQ_USER"); userID != "" {
		cfg.UserID = userID
	}

	switch cfg.Backend {
	case "file", "sqlite":
	default:
		return nil, fmt.Errorf("invalid backend %q: must be file or sqlite", cfg.Backend)
	}

	// Set defaults if not configured
	if cfg.StatePath == "" {
		// Check for project-local state first
		if _, err := os.Stat(".evq"); err == nil {
			cfg.StatePath = filepath.Join(".evq", defaultStateFile(cfg.Backend))
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to get home directory: %w", err)
			}
			cfg.StatePath = filepath.Join(homeDir, ".local", "share", "evq", defaultStateFile(cfg.Backend))
		}
	}

	return cfg, nil
}

func defaultStateFile(backend string) string {
	if backend == "sqlite" {
		return "evq.db"
	}
	return "state.json"
}

// loadYAMLConfig loads configuration from ~/.config/evq/config.yaml
func loadYAMLConfig(cfg *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(homeDir, ".config", "evq", "config.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// getEnvOrFile gets an environment variable value, or reads it from a file
// if the _FILE variant is set
func getEnvOrFile(envVar, fileVar string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}

	if filePath := os.Getenv(fileVar); filePath != "" {
		data, err := os.ReadFile(filePath)
		if err == nil {
			return string(data)
		}
	}

	return ""
}

// findEnvLocal searches for .env.local starting from cwd and walking up
// parent directories. Stops at the user's home directory.
func findEnvLocal() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		if _, err := os.Stat(".env.local"); err == nil {
			return ".env.local"
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	homeDir = filepath.Clean(homeDir)
	dir := filepath.Clean(cwd)

	for {
		envPath := filepath.Join(dir, ".env.local")
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}

		if dir == homeDir {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
