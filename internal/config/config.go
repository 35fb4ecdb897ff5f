package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"vergos/internal/crosscheck"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	CORS       CORSConfig
	CrossCheck CrossCheckConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port        string `mapstructure:"port"`
	Environment string `mapstructure:"environment"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CrossCheckConfig holds the reconciliation thresholds. The defaults are
// product policy, not regulation, which is why they are configurable.
type CrossCheckConfig struct {
	AbsoluteTolerance       float64 `mapstructure:"absolute_tolerance"`
	RelativeTolerance       float64 `mapstructure:"relative_tolerance"`
	HeadcountSwingThreshold float64 `mapstructure:"headcount_swing_threshold"`
}

// Options converts the config section into engine options.
func (c *CrossCheckConfig) Options() crosscheck.Options {
	return crosscheck.Options{
		Tolerance: crosscheck.Tolerance{
			Absolute: c.AbsoluteTolerance,
			Relative: c.RelativeTolerance,
		},
		HeadcountSwingThreshold: c.HeadcountSwingThreshold,
	}
}

// Load reads configuration from environment variables with the VERGOS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("VERGOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.environment", "development")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Cross-check threshold defaults
	v.SetDefault("crosscheck.absolute_tolerance", crosscheck.DefaultAbsoluteTolerance)
	v.SetDefault("crosscheck.relative_tolerance", crosscheck.DefaultRelativeTolerance)
	v.SetDefault("crosscheck.headcount_swing_threshold", crosscheck.DefaultHeadcountSwingThreshold)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                          "VERGOS_SERVER_PORT",
		"server.environment":                   "VERGOS_SERVER_ENVIRONMENT",
		"cors.allowed_origins":                 "VERGOS_CORS_ALLOWED_ORIGINS",
		"crosscheck.absolute_tolerance":        "VERGOS_CROSSCHECK_ABSOLUTE_TOLERANCE",
		"crosscheck.relative_tolerance":        "VERGOS_CROSSCHECK_RELATIVE_TOLERANCE",
		"crosscheck.headcount_swing_threshold": "VERGOS_CROSSCHECK_HEADCOUNT_SWING_THRESHOLD",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if VERGOS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("VERGOS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:        serverPort,
		Environment: v.GetString("server.environment"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: strings.Split(v.GetString("cors.allowed_origins"), ","),
	}
	cfg.CrossCheck = CrossCheckConfig{
		AbsoluteTolerance:       v.GetFloat64("crosscheck.absolute_tolerance"),
		RelativeTolerance:       v.GetFloat64("crosscheck.relative_tolerance"),
		HeadcountSwingThreshold: v.GetFloat64("crosscheck.headcount_swing_threshold"),
	}

	return cfg, nil
}
