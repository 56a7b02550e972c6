package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadTestConfig reads the TEST_DB_* variables used by integration tests.
// Unset variables leave the config unconfigured so the tests can skip.
func LoadTestConfig() (*Config, error) {
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			Host:     os.Getenv("TEST_DB_HOST"),
			User:     os.Getenv("TEST_DB_USER"),
			Password: os.Getenv("TEST_DB_PASSWORD"),
			DBName:   os.Getenv("TEST_DB_NAME"),
		},
		JWT: JWTConfig{Secret: "integration-test-secret"},
	}

	if raw := os.Getenv("TEST_DB_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TEST_DB_PORT: %w", err)
		}
		cfg.Database.Port = port
	}

	return cfg, nil
}

// IsConfigured reports whether a test database is configured
func (c *Config) IsConfigured() bool {
	return c.Database.Host != "" && c.Database.Port != 0 && c.Database.User != "" && c.Database.DBName != ""
}
