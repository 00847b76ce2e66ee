package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/wippyai/abi-codec/coder"
)

type fileConfig struct {
	MaxInputSize       int  `toml:"max_input_size"`
	ReadBudgetMultiple int  `toml:"read_budget_multiple"`
	ValidateUTF8       bool `toml:"validate_utf8"`
	Strict             bool `toml:"strict"`
}

// loadConfig reads decoder limits from a TOML file. Keys missing from the
// file keep their defaults.
func loadConfig(path string) (*coder.Config, error) {
	cfg := coder.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("max_input_size") {
		if raw.MaxInputSize <= 0 {
			return nil, fmt.Errorf("max_input_size must be positive, got %d", raw.MaxInputSize)
		}
		cfg.MaxInputSize = raw.MaxInputSize
	}
	if meta.IsDefined("read_budget_multiple") {
		if raw.ReadBudgetMultiple <= 0 {
			return nil, fmt.Errorf("read_budget_multiple must be positive, got %d", raw.ReadBudgetMultiple)
		}
		cfg.ReadBudgetMultiple = raw.ReadBudgetMultiple
	}
	if meta.IsDefined("validate_utf8") {
		cfg.ValidateUTF8 = raw.ValidateUTF8
	}
	if meta.IsDefined("strict") {
		cfg.Strict = raw.Strict
	}
	return cfg, nil
}
