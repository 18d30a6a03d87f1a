package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/alchemy.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Provider: ProviderConfig{
			Addr: ":9876",
			Policy: PolicyConfig{
				Width:    Range{Min: 10, Max: 20},
				Height:   Range{Min: 4, Max: 10},
				MaxMoves: Range{Min: 8, Max: 20},
			},
		},
		Client: ClientConfig{
			ProviderURL: "http://localhost:9876",
			Timeout:     5 * time.Second,
		},
		SSH: SSHConfig{
			Addr:        ":23234",
			HostKeyPath: ".ssh/alchemy_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
		Storage: StorageConfig{
			DBPath: "~/.alchemy/users.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
