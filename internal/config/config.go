// Package config provides configuration for the application
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port           int
	MaxRequestSize int64
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// JWTConfig holds access token settings
type JWTConfig struct {
	Secret            string
	AccessTokenExpiry time.Duration
}

// RateLimitConfig holds per-IP rate limiting settings
type RateLimitConfig struct {
	RequestsPerMinute int
}

// Load reads configuration from environment variables, optionally from a .env file.
// Every missing or malformed variable is reported in the returned error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := &envReader{}
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     env.required("DB_HOST"),
			Port:     env.positiveInt("DB_PORT", ""),
			User:     env.required("DB_USER"),
			Password: env.required("DB_PASSWORD"),
			DBName:   env.required("DB_NAME"),
		},
		Server: ServerConfig{
			Port:           env.positiveInt("SERVER_PORT", "8080"),
			MaxRequestSize: int64(env.positiveInt("MAX_REQUEST_SIZE", "1048576")),
		},
		Logging: LoggingConfig{
			Level: env.optional("LOG_LEVEL", "info"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
		},
		JWT: JWTConfig{
			Secret:            env.required("JWT_SECRET"),
			AccessTokenExpiry: env.duration("JWT_ACCESS_TOKEN_EXPIRY", "1h"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: env.positiveInt("RATE_LIMIT_PER_MINUTE", "100"),
		},
	}

	if err := env.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envReader reads environment variables and collects the problems it finds
type envReader struct {
	errs []error
}

func (e *envReader) optional(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (e *envReader) required(key string) string {
	v := os.Getenv(key)
	if v == "" {
		e.errs = append(e.errs, fmt.Errorf("%s is required", key))
	}
	return v
}

// positiveInt reads an integer greater than zero; an empty fallback makes the variable required
func (e *envReader) positiveInt(key, fallback string) int {
	raw := e.optional(key, fallback)
	if raw == "" {
		e.errs = append(e.errs, fmt.Errorf("%s is required", key))
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		e.errs = append(e.errs, fmt.Errorf("invalid %s: %q", key, raw))
		return 0
	}
	return n
}

func (e *envReader) duration(key, fallback string) time.Duration {
	raw := e.optional(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		e.errs = append(e.errs, fmt.Errorf("invalid %s: %q", key, raw))
		return 0
	}
	return d
}

func (e *envReader) Err() error {
	return errors.Join(e.errs...)
}

// parseOrigins parses comma-separated origins, allowing all origins when none are given
func parseOrigins(value string) []string {
	var origins []string
	for origin := range strings.SplitSeq(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// DSN returns the MySQL connection string.
// Times are parsed into time.Time and the connection uses utf8mb4.
func (c *Config) DSN() string {
	dsn := mysql.NewConfig()
	dsn.User = c.Database.User
	dsn.Passwd = c.Database.Password
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(c.Database.Host, strconv.Itoa(c.Database.Port))
	dsn.DBName = c.Database.DBName
	dsn.ParseTime = true
	dsn.Params = map[string]string{"charset": "utf8mb4"}
	return dsn.FormatDSN()
}
