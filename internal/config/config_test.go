package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vergos/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")

	assert.Equal(t, 1.00, cfg.CrossCheck.AbsoluteTolerance)
	assert.Equal(t, 0.001, cfg.CrossCheck.RelativeTolerance)
	assert.Equal(t, 0.20, cfg.CrossCheck.HeadcountSwingThreshold)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VERGOS_SERVER_PORT", ":9090")
	t.Setenv("VERGOS_CROSSCHECK_ABSOLUTE_TOLERANCE", "5.0")
	t.Setenv("VERGOS_CORS_ALLOWED_ORIGINS", "https://app.example.com,https://staging.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, 5.0, cfg.CrossCheck.AbsoluteTolerance)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "3001")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":3001", cfg.Server.Port)
}

func TestOptions_Conversion(t *testing.T) {
	c := config.CrossCheckConfig{
		AbsoluteTolerance:       2.5,
		RelativeTolerance:       0.01,
		HeadcountSwingThreshold: 0.30,
	}
	opts := c.Options()
	assert.Equal(t, 2.5, opts.Tolerance.Absolute)
	assert.Equal(t, 0.01, opts.Tolerance.Relative)
	assert.Equal(t, 0.30, opts.HeadcountSwingThreshold)
}
