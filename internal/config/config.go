package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// BuildVersion is stamped at build time via -ldflags "-X .../internal/config.BuildVersion=...".
// SERVICE_VERSION in the environment takes precedence.
var BuildVersion = "dev"

// Config is the process-wide configuration, populated from the environment.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	Addr           string

	DatabaseDSN string

	// PosterCacheDir is the root of the rendered-poster file cache.
	PosterCacheDir string
	// ChromePath overrides the headless Chrome binary; empty uses PATH.
	ChromePath    string
	RenderTimeout time.Duration
	// RenderRateLimit caps renders per user per minute across the preview
	// and download endpoints.
	RenderRateLimit int

	SweepEnabled      bool
	SweepMaxAge       time.Duration
	SweepPollInterval time.Duration

	TracingEnabled          bool
	TracingExporterEndpoint string
	TracingExporterProtocol string
	TracingSamplingRatio    float64
}

// Load reads configuration from the environment with local-dev defaults.
func Load() (Config, error) {
	return Config{
		ServiceName:    envString("SERVICE_NAME", "reviewqr"),
		ServiceVersion: envString("SERVICE_VERSION", BuildVersion),
		Environment:    envString("ENVIRONMENT", "development"),
		Addr:           envString("HTTP_ADDR", ":8080"),

		DatabaseDSN: envString("DATABASE_DSN", "file:reviewqr.db?_pragma=busy_timeout(5000)"),

		PosterCacheDir:  envString("POSTER_CACHE_DIR", "data/poster-cache"),
		ChromePath:      envString("CHROME_PATH", ""),
		RenderTimeout:   envDuration("RENDER_TIMEOUT", 15*time.Second),
		RenderRateLimit: envInt("RENDER_RATE_LIMIT", 30),

		SweepEnabled:      envBool("POSTER_SWEEP_ENABLED", false),
		SweepMaxAge:       envDuration("POSTER_SWEEP_MAX_AGE", 30*24*time.Hour),
		SweepPollInterval: envDuration("POSTER_SWEEP_INTERVAL", 6*time.Hour),

		TracingEnabled:          envBool("TRACING_ENABLED", false),
		TracingExporterEndpoint: envString("TRACING_EXPORTER_ENDPOINT", ""),
		TracingExporterProtocol: envString("TRACING_EXPORTER_PROTOCOL", "grpc"),
		TracingSamplingRatio:    envFloat("TRACING_SAMPLING_RATIO", 0.1),
	}, nil
}

// IsProduction reports whether the process runs with production hardening.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func envString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func envFloat(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}
