package config

import (
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "lessons")
	t.Setenv("JWT_SECRET", "jwt-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRY", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")
	t.Setenv("MAX_REQUEST_SIZE", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, int64(1048576), cfg.Server.MaxRequestSize)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, time.Hour, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerMinute)
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Host: "db", Port: 3307, User: "app", Password: "p@ss:word", DBName: "lessons"}}

	dsn, err := mysql.ParseDSN(cfg.DSN())

	require.NoError(t, err)
	assert.Equal(t, "app", dsn.User)
	assert.Equal(t, "p@ss:word", dsn.Passwd)
	assert.Equal(t, "tcp", dsn.Net)
	assert.Equal(t, "db:3307", dsn.Addr)
	assert.Equal(t, "lessons", dsn.DBName)
	assert.True(t, dsn.ParseTime)
	assert.Contains(t, cfg.DSN(), "charset=utf8mb4")
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRY", "15m")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "30")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, 30, cfg.RateLimit.RequestsPerMinute)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "missing DB_HOST", key: "DB_HOST", value: ""},
		{name: "invalid DB_PORT", key: "DB_PORT", value: "abc"},
		{name: "missing JWT_SECRET", key: "JWT_SECRET", value: ""},
		{name: "invalid SERVER_PORT", key: "SERVER_PORT", value: "port"},
		{name: "invalid expiry", key: "JWT_ACCESS_TOKEN_EXPIRY", value: "soon"},
		{name: "invalid rate limit", key: "RATE_LIMIT_PER_MINUTE", value: "0"},
		{name: "invalid request size", key: "MAX_REQUEST_SIZE", value: "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()

			assert.ErrorContains(t, err, tt.key)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_ReportsAllProblems(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SERVER_PORT", "-1")

	_, err := Load()

	require.Error(t, err)
	assert.ErrorContains(t, err, "DB_HOST is required")
	assert.ErrorContains(t, err, "JWT_SECRET is required")
	assert.ErrorContains(t, err, "invalid SERVER_PORT")
}

func TestLoadTestConfig(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		t.Setenv("TEST_DB_HOST", "")

		cfg, err := LoadTestConfig()

		require.NoError(t, err)
		assert.False(t, cfg.IsConfigured())
	})

	t.Run("configured", func(t *testing.T) {
		t.Setenv("TEST_DB_HOST", "localhost")
		t.Setenv("TEST_DB_PORT", "3306")
		t.Setenv("TEST_DB_USER", "root")
		t.Setenv("TEST_DB_PASSWORD", "")
		t.Setenv("TEST_DB_NAME", "lessons_test")

		cfg, err := LoadTestConfig()

		require.NoError(t, err)
		assert.True(t, cfg.IsConfigured())
		assert.Equal(t, "lessons_test", cfg.Database.DBName)
		assert.NotEmpty(t, cfg.JWT.Secret)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("TEST_DB_HOST", "localhost")
		t.Setenv("TEST_DB_PORT", "abc")

		_, err := LoadTestConfig()

		assert.Error(t, err)
	})
}
