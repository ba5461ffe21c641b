package config

// GlobalConfig contains all configuration sections for the application
type GlobalConfig struct {
	BatchConfig    BatchConfig    `json:"batch_config,omitempty" yaml:"batch_config,omitempty"`
	DiffConfig     DiffConfig     `json:"diff_config,omitempty" yaml:"diff_config,omitempty"`
	InputConfig    InputConfig    `json:"input_config,omitempty" yaml:"input_config,omitempty"`
	LogConfig      LogConfig      `json:"log_config,omitempty" yaml:"log_config,omitempty"`
	ReporterConfig ReporterConfig `json:"reporter_config,omitempty" yaml:"reporter_config,omitempty"`
}

// NewDefaultGlobalConfig creates a new GlobalConfig with default values
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		BatchConfig:    NewDefaultBatchConfig(),
		DiffConfig:     NewDefaultDiffConfig(),
		InputConfig:    NewDefaultInputConfig(),
		LogConfig:      NewDefaultLogConfig(),
		ReporterConfig: NewDefaultReporterConfig(),
	}
}
