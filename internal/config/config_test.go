package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 0.3, cfg.Classifier.ConfidenceThreshold)
	assert.Equal(t, 1000, cfg.Classifier.MaxFeatures)
	assert.Equal(t, "gpt-3.5-turbo", cfg.LLM.Model)
	assert.Equal(t, 150, cfg.LLM.MaxTokens)
	assert.Equal(t, 0.7, cfg.LLM.Temperature)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Equal(t, 20, cfg.Session.MaxMessages)

	assert.NoError(t, cfg.Validate())
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte(`
server:
  port: 8080
classifier:
  confidence_threshold: 0.5
llm:
  model: gpt-4o-mini
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 0.5, cfg.Classifier.ConfidenceThreshold)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	// Untouched fields keep their defaults.
	assert.Equal(t, "memory", cfg.Cache.Driver)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("CONFIDENCE_THRESHOLD", "0.45")
	t.Setenv("REDIS_URL", "redis://cache.local:6379")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "test-key", cfg.LLM.APIKey)
	assert.Equal(t, 0.45, cfg.Classifier.ConfidenceThreshold)
	assert.Equal(t, "redis", cfg.Cache.Driver)
	assert.Equal(t, "cache.local:6379", cfg.Cache.Redis.Addr)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }},
		{"threshold above one", func(c *Config) { c.Classifier.ConfidenceThreshold = 1.5 }},
		{"zero max features", func(c *Config) { c.Classifier.MaxFeatures = 0 }},
		{"unknown cache driver", func(c *Config) { c.Cache.Driver = "memcached" }},
		{"tiny session cap", func(c *Config) { c.Session.MaxMessages = 1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
