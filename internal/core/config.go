package core

import "time"

// RuntimeConfig contains configuration passed to the front end at start.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	UserID       string        // Player id sent to the provider; empty lets it pick one
	FetchTimeout time.Duration // Upper bound for one puzzle fetch
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		FetchTimeout: 5 * time.Second,
	}
}
