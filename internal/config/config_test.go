package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "5000", cfg.HTTPPort)
	assert.Equal(t, "cakeDB", cfg.MongoDBName)
	assert.Contains(t, cfg.AllowedOrigins, "http://localhost:5173")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg := Load()

	assert.Equal(t, "8081", cfg.HTTPPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestMongoURI_AssembledFromCredentials(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("DB_USER", "baker")
	t.Setenv("DB_PASS", "hunter2")

	cfg := Load()

	assert.Contains(t, cfg.MongoURI, "mongodb+srv://baker:hunter2@")
}
