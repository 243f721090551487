package config_test

import (
	"os"
	"testing"

	"nextin/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVER_PORT", "STORE_DRIVER", "DATA_FILE", "MOVE_POLICY", "JWT_SECRET", "JWT_EXPIRY_HOURS", "CORS_ORIGIN"} {
		// Setenv restores the original value after the test
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := config.Load()

	assert.Equal(t, "4000", cfg.ServerPort)
	assert.Equal(t, config.StoreFile, cfg.StoreDriver)
	assert.Equal(t, "data.json", cfg.DataFile)
	assert.Equal(t, "resolve", cfg.MovePolicy)
	assert.Equal(t, 24, cfg.JWTExpiryHours)
	assert.Equal(t, "*", cfg.CORSOrigin)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_KEY", "board:test")
	t.Setenv("MOVE_POLICY", "strict")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY_HOURS", "2")

	cfg := config.Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, config.StoreRedis, cfg.StoreDriver)
	assert.Equal(t, "board:test", cfg.RedisKey)
	assert.Equal(t, "strict", cfg.MovePolicy)
	assert.True(t, cfg.AuthEnabled())
	assert.Equal(t, 2, cfg.JWTExpiryHours)
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("JWT_EXPIRY_HOURS", "soon")

	cfg := config.Load()

	assert.Equal(t, 24, cfg.JWTExpiryHours)
}
