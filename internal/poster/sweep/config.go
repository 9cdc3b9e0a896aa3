package sweep

import "time"

// Config controls the cache sweep worker loop. The cache key space
// self-invalidates on business mutation, so the sweep is purely an
// operational safeguard against unbounded growth of orphaned files.
type Config struct {
	Enabled      bool
	MaxAge       time.Duration
	PollInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		Enabled:      false,
		MaxAge:       30 * 24 * time.Hour,
		PollInterval: 6 * time.Hour,
	}
}

func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.MaxAge <= 0 {
		c.MaxAge = defaults.MaxAge
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaults.PollInterval
	}
	return c
}
