// Package config provides functionality for loading and accessing environment variables.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file in the current or
// parent directory, if one exists. It returns the file that was loaded.
func LoadEnv() string {
	var loaded string
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}
		if err := godotenv.Load(envFile); err != nil {
			return
		}
		loaded = envFile
	})
	return loaded
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

// LogLevelFromEnv returns FIRE_LOG_LEVEL, else LOG_LEVEL, else "info". It
// serves logging that happens before the configuration is read.
func LogLevelFromEnv() string {
	if level := GetEnv(EnvPrefix+"_LOG_LEVEL", ""); level != "" {
		return level
	}
	return GetEnv("LOG_LEVEL", "info")
}
