package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Susos holds the connection settings for the legacy SuSOS MySQL database.
type Susos struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; credentials may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// SusosFromEnv builds the SuSOS connection settings from the environment.
// Only the password is required; host, port, user and database default to the
// legacy production values.
func SusosFromEnv() (*Susos, error) {
	cfg := &Susos{
		Host:     envOr("SUSOS_HOST", "legacy.mysql.gewis.nl"),
		Port:     envOr("SUSOS_PORT", "3306"),
		User:     envOr("SUSOS_USER", "sudosos"),
		Password: strings.TrimSpace(os.Getenv("SUSOS_PASSWORD")),
		Database: envOr("SUSOS_DATABASE", "susos"),
	}

	if cfg.Password == "" {
		return nil, fmt.Errorf("SUSOS_PASSWORD is not set - add it to the environment or a .env file")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
