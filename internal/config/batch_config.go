package config

// BatchConfig defines configuration for directory comparisons
type BatchConfig struct {
	MaxWorkers int `json:"max_workers,omitempty" yaml:"max_workers,omitempty" validate:"omitempty,min=1,max=256"`
}

// NewDefaultBatchConfig creates default batch configuration
func NewDefaultBatchConfig() BatchConfig {
	return BatchConfig{
		MaxWorkers: DefaultBatchMaxWorkers,
	}
}

// Workers returns the effective worker count.
func (bc BatchConfig) Workers() int {
	if bc.MaxWorkers <= 0 {
		return 1
	}
	return bc.MaxWorkers
}
