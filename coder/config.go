package coder

import "github.com/wippyai/abi-codec/coder/internal/bounds"

// Safety limits applied when a Config leaves a field at zero.
const (
	DefaultMaxInputSize       = bounds.DefaultMaxInputSize
	DefaultReadBudgetMultiple = bounds.DefaultReadBudgetMultiple
)

// Config controls decoder limits. A nil *Config means defaults.
type Config struct {
	// MaxInputSize is the largest input accepted, in bytes.
	MaxInputSize int `toml:"max_input_size"`

	// ReadBudgetMultiple bounds the bytes a decode may read to this multiple
	// of the input length. Input that points several tails at the same data
	// is charged for every read.
	ReadBudgetMultiple int `toml:"read_budget_multiple"`

	// ValidateUTF8 rejects string values that are not valid UTF-8.
	ValidateUTF8 bool `toml:"validate_utf8"`

	// Strict rejects input with bytes past the furthest byte the top-level
	// decode read.
	Strict bool `toml:"strict"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() *Config {
	return &Config{
		MaxInputSize:       DefaultMaxInputSize,
		ReadBudgetMultiple: DefaultReadBudgetMultiple,
	}
}

func (c *Config) resolve() Config {
	if c == nil {
		return *DefaultConfig()
	}
	out := *c
	if out.MaxInputSize <= 0 {
		out.MaxInputSize = DefaultMaxInputSize
	}
	if out.ReadBudgetMultiple <= 0 {
		out.ReadBudgetMultiple = DefaultReadBudgetMultiple
	}
	return out
}
