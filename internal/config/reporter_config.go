package config

// ReporterConfig defines configuration for generating HTML reports
type ReporterConfig struct {
	// OutputDir receives comparison pages and the index; empty means the working directory.
	OutputDir   string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
	Minify      bool   `json:"minify" yaml:"minify"`
	WritePatch  bool   `json:"write_patch" yaml:"write_patch"`
	OpenBrowser bool   `json:"open_browser" yaml:"open_browser"`
	TabSize     int    `json:"tab_size,omitempty" yaml:"tab_size,omitempty" validate:"omitempty,min=1,max=16"`
	IndexTitle  string `json:"index_title,omitempty" yaml:"index_title,omitempty"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		OutputDir:   DefaultReporterOutputDir,
		Minify:      DefaultReporterMinify,
		WritePatch:  DefaultReporterWritePatch,
		OpenBrowser: DefaultReporterOpenBrowser,
		TabSize:     DefaultReporterTabSize,
		IndexTitle:  DefaultReporterIndexTitle,
	}
}
