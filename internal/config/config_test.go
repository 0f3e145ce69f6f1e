package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("AGENDOR_TOKEN", "agendor-secret")
	t.Setenv("SERVICE_TOKEN", "service-secret")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("DEV", "true")

	conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "agendor-secret", conf.Agendor.ApiKey)
	assert.Equal(t, "service-secret", conf.Listen.ApiKey)
	assert.Equal(t, "mongodb://localhost:27017", conf.Mongo.Uri)
	assert.Equal(t, "https://api.agendor.com.br/v3", conf.Agendor.BaseURL)
	assert.Equal(t, 15*time.Second, conf.Agendor.Timeout)
	assert.Equal(t, "8000", conf.Listen.Port)
	assert.True(t, conf.Dev)
	assert.Equal(t, "dev", conf.Env)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	yml := `
env: local
agendor:
  api_key: file-token
  timeout: 5s
listen:
  port: "9100"
  key: file-service-token
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0600))

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "local", conf.Env)
	assert.Equal(t, "file-token", conf.Agendor.ApiKey)
	assert.Equal(t, 5*time.Second, conf.Agendor.Timeout)
	assert.Equal(t, "9100", conf.Listen.Port)
	assert.Equal(t, "file-service-token", conf.Listen.ApiKey)
}

func TestLoad_MissingTokens(t *testing.T) {
	t.Setenv("AGENDOR_TOKEN", "")
	t.Setenv("SERVICE_TOKEN", "service-secret")

	_, err := Load("")
	assert.ErrorContains(t, err, "AGENDOR_TOKEN")
}
