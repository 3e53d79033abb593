package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "MYSQL_DSN", "REDIS_ADDR", "REDIS_DB", "REDIS_PASSWORD", "JWT_SECRET", "UPLOAD_DIR", "SWAGGER_HOST"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	// JWT_SECRET and SWAGGER_HOST have no defaults
	assert.Empty(t, cfg.JWTSecret)
	assert.Empty(t, cfg.SwaggerHost)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("UPLOAD_DIR", "/var/data/uploads")
	t.Setenv("SWAGGER_HOST", "api.example.com")
	t.Setenv("REDIS_DB", "3")

	cfg := Load()

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "super-secret", cfg.JWTSecret)
	assert.Equal(t, "/var/data/uploads", cfg.UploadDir)
	assert.Equal(t, "api.example.com", cfg.SwaggerHost)
	assert.Equal(t, 3, cfg.RedisDB)
}
