package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("FLIPPAY_TOKEN", "tok-123")
	t.Setenv("FLIPPAY_DEMO", "true")
	t.Setenv("FLIPPAY_TIMEOUT", "5s")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", cfg.Token)
	assert.True(t, cfg.Demo)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestFromEnvRequiresToken(t *testing.T) {
	t.Setenv("FLIPPAY_TOKEN", "")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestFromEnvRejectsBadTimeout(t *testing.T) {
	t.Setenv("FLIPPAY_TOKEN", "tok-123")
	t.Setenv("FLIPPAY_TIMEOUT", "soon")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestBaseURLSelection(t *testing.T) {
	cfg := &Config{Token: "tok"}
	assert.Equal(t, DefaultProductionURL, cfg.BaseURL())

	cfg.Demo = true
	assert.Equal(t, DefaultDemoURL, cfg.BaseURL())

	cfg.DemoURL = "http://localhost:8080/api/v2/"
	assert.Equal(t, "http://localhost:8080/api/v2/", cfg.BaseURL())
}

func TestHTTPTimeoutDefault(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, defaultTimeout, cfg.HTTPTimeout())

	cfg.Timeout = time.Second
	assert.Equal(t, time.Second, cfg.HTTPTimeout())
}
