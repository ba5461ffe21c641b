package config

import "slices"

// InputConfig defines which files take part in directory comparisons
type InputConfig struct {
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty" validate:"omitempty,dive,extension"`
}

// NewDefaultInputConfig creates default input configuration
func NewDefaultInputConfig() InputConfig {
	return InputConfig{
		Extensions: slices.Clone(DefaultInputExtensions),
	}
}
