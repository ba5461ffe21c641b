package config

const (
	// Diff Defaults
	DefaultDiffWrapWidth           = 120
	DefaultDiffSimilarityThreshold = 0.6
	DefaultDiffContextOnly         = false
	DefaultDiffContextLines        = 5
	DefaultDiffAutoJunk            = true
	DefaultDiffMaxFileSizeMB       = 50

	// Reporter Defaults
	DefaultReporterOutputDir   = ""
	DefaultReporterMinify      = false
	DefaultReporterWritePatch  = false
	DefaultReporterOpenBrowser = true
	DefaultReporterTabSize     = 4
	DefaultReporterIndexTitle  = "IR Comparisons Index"

	// Batch Defaults
	DefaultBatchMaxWorkers = 4

	// Log Defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// ConfigPathEnv names the environment variable consulted for the config file path
	ConfigPathEnv = "IRDIFF_CONFIG"
)

// DefaultInputExtensions is the allow-list of IR file extensions.
var DefaultInputExtensions = []string{".llir", ".ptx", ".ttgir", ".ttir"}
