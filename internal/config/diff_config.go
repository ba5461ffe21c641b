package config

// DiffConfig defines the tunables of the diff pipeline
type DiffConfig struct {
	// WrapWidth is the display width at which long lines are wrapped; 0 disables wrapping.
	WrapWidth int `json:"wrap_width" yaml:"wrap_width" validate:"min=0,max=10000"`
	// SimilarityThreshold below which changed line pairs are highlighted as a whole.
	SimilarityThreshold float64 `json:"similarity_threshold" yaml:"similarity_threshold" validate:"min=0,max=1"`
	// ContextOnly collapses unchanged regions, keeping ContextLines around each change.
	ContextOnly   bool `json:"context_only" yaml:"context_only"`
	ContextLines  int  `json:"context_lines" yaml:"context_lines" validate:"min=0"`
	AutoJunk      bool `json:"auto_junk" yaml:"auto_junk"`
	MaxFileSizeMB int  `json:"max_file_size_mb,omitempty" yaml:"max_file_size_mb,omitempty" validate:"omitempty,min=1"`
}

// NewDefaultDiffConfig creates default diff configuration
func NewDefaultDiffConfig() DiffConfig {
	return DiffConfig{
		WrapWidth:           DefaultDiffWrapWidth,
		SimilarityThreshold: DefaultDiffSimilarityThreshold,
		ContextOnly:         DefaultDiffContextOnly,
		ContextLines:        DefaultDiffContextLines,
		AutoJunk:            DefaultDiffAutoJunk,
		MaxFileSizeMB:       DefaultDiffMaxFileSizeMB,
	}
}

// MaxFileSizeBytes returns the input size limit in bytes, 0 meaning unlimited.
func (dc DiffConfig) MaxFileSizeBytes() int64 {
	if dc.MaxFileSizeMB <= 0 {
		return 0
	}
	return int64(dc.MaxFileSizeMB) * 1024 * 1024
}
