package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	// viper treats empty variables as unset
	for _, key := range []string{
		"SERVER_PORT", "DB_DRIVER", "DB_MAX_OPEN_CONNS", "DB_CONN_MAX_LIFETIME",
		"AUTO_MIGRATE", "REDIS_ADDR", "CORS_ORIGINS", "RATE_LIMIT_AUTH_RPS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 20, cfg.DBMaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.DBConnLifetime)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, 5.0, cfg.RateLimitAuthRPS)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("AUTO_MIGRATE", "false")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("RATE_LIMIT_AUTH_RPS", "0")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Zero(t, cfg.RateLimitAuthRPS)
}

func TestSplitList(t *testing.T) {
	assert.Empty(t, splitList(""))
	assert.Equal(t, []string{"a", "b"}, splitList(" a ,b,"))
}
