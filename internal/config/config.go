// Package config provides YAML-based configuration loading and difficulty
// presets for RGB Alchemy.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/rgb-alchemy/internal/games/alchemy/core"
)

// MaxMoveBudget is the largest move budget a policy may hand out.
const MaxMoveBudget = 1000

// Config is the complete configuration for every alchemy command.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Client   ClientConfig   `yaml:"client"`
	SSH      SSHConfig      `yaml:"ssh"`
	Storage  StorageConfig  `yaml:"storage"`
}

// ProviderConfig configures the puzzle provider service.
type ProviderConfig struct {
	Addr   string       `yaml:"addr"`
	Policy PolicyConfig `yaml:"policy"`
}

// PolicyConfig holds the inclusive ranges puzzles are drawn from.
type PolicyConfig struct {
	Width    Range `yaml:"width"`
	Height   Range `yaml:"height"`
	MaxMoves Range `yaml:"max_moves"`
}

// Range is an inclusive integer interval.
type Range struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Span returns the number of integers in the range.
func (r Range) Span() int {
	return r.Max - r.Min + 1
}

// ClientConfig configures how the front end reaches the provider.
type ClientConfig struct {
	ProviderURL string        `yaml:"provider_url"`
	Timeout     time.Duration `yaml:"timeout"`
	Offline     bool          `yaml:"offline"` // generate puzzles locally
}

// SSHConfig configures the SSH game server.
type SSHConfig struct {
	Addr        string        `yaml:"addr"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// StorageConfig configures the provider's user registry.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ValidationError describes a configuration value that cannot be used.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Code, e.Message)
}

// Validate checks the policy ranges. Every puzzle it can produce is one a
// client accepts.
func (p PolicyConfig) Validate() error {
	if err := validateRange("width", p.Width, 1, core.MaxDimension); err != nil {
		return err
	}
	if err := validateRange("height", p.Height, 1, core.MaxDimension); err != nil {
		return err
	}
	return validateRange("max_moves", p.MaxMoves, 1, MaxMoveBudget)
}

func validateRange(name string, r Range, floor, ceiling int) error {
	if r.Min < floor {
		return ValidationError{
			Code:    "range_min",
			Message: fmt.Sprintf("%s.min must be at least %d, got %d", name, floor, r.Min),
		}
	}
	if r.Max < r.Min {
		return ValidationError{
			Code:    "range_order",
			Message: fmt.Sprintf("%s.max (%d) is below %s.min (%d)", name, r.Max, name, r.Min),
		}
	}
	if r.Max > ceiling {
		return ValidationError{
			Code:    "range_max",
			Message: fmt.Sprintf("%s.max must be at most %d, got %d", name, ceiling, r.Max),
		}
	}
	return nil
}

// Validate checks the fields every command depends on.
func (c Config) Validate() error {
	if err := c.Provider.Policy.Validate(); err != nil {
		return err
	}
	if c.Client.Timeout < 0 {
		return ValidationError{Code: "timeout", Message: "client.timeout must not be negative"}
	}
	if c.SSH.IdleTimeout < 0 {
		return ValidationError{Code: "timeout", Message: "ssh.idle_timeout must not be negative"}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", ValidationError{
			Code:    "difficulty",
			Message: fmt.Sprintf("unknown difficulty %q (use easy, normal or hard)", s),
		}
	}
}

// ApplyPreset modifies the policy based on a difficulty preset.
// Easy puzzles are small with a generous budget; hard ones are large and tight.
func ApplyPreset(p *PolicyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		p.Width = Range{Min: 6, Max: 12}
		p.Height = Range{Min: 3, Max: 6}
		p.MaxMoves = Range{Min: 14, Max: 20}
	case DifficultyHard:
		p.Width = Range{Min: 15, Max: 20}
		p.Height = Range{Min: 8, Max: 10}
		p.MaxMoves = Range{Min: 8, Max: 12}
	}
}
