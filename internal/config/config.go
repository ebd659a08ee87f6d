// Package config provides configuration for the chat backend.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the chat backend configuration.
type Config struct {
	// Provider credentials
	FolderID string
	APIKey   string

	// Model name within the provider folder
	Model string

	// Server settings
	Port int
}

// Load loads configuration from environment variables. FOLDER_ID and API_KEY
// are required; the process refuses to start without them.
func Load() (*Config, error) {
	cfg := &Config{
		FolderID: os.Getenv("FOLDER_ID"),
		APIKey:   os.Getenv("API_KEY"),
		Model:    getEnv("MODEL", "qwen3-235b-a22b-fp8/latest"),
		Port:     getEnvInt("PORT", 8000),
	}

	if cfg.FolderID == "" || cfg.APIKey == "" {
		return nil, fmt.Errorf("FOLDER_ID and API_KEY must be set in environment variables")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
