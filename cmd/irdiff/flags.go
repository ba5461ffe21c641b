package main

import (
	"github.com/aleister1102/irdiff/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AppFlags holds the values of the persistent flags. Only flags the user
// actually set override the configuration file.
type AppFlags struct {
	GlobalConfigFile    string
	LogLevel            string
	NoOpen              bool
	WrapWidth           int
	SimilarityThreshold float64
	ContextOnly         bool
	ContextLines        int
	Minify              bool
	WritePatch          bool
	Workers             int
	TabSize             int
}

func (f *AppFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.GlobalConfigFile, "config", "c", "", "Path to the YAML/JSON configuration file. If not set, searches default locations.")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config file if set)")
	fs.BoolVar(&f.NoOpen, "no-open", false, "Do not open the result in the default browser")
	fs.IntVar(&f.WrapWidth, "wrap", config.DefaultDiffWrapWidth, "Wrap lines wider than this many columns (0 disables wrapping)")
	fs.Float64Var(&f.SimilarityThreshold, "threshold", config.DefaultDiffSimilarityThreshold, "Similarity below which changed lines are shown as whole-line replacements")
	fs.BoolVar(&f.ContextOnly, "context", config.DefaultDiffContextOnly, "Only show changed regions with surrounding context")
	fs.IntVar(&f.ContextLines, "context-lines", config.DefaultDiffContextLines, "Unchanged lines kept around each change with --context")
	fs.BoolVar(&f.Minify, "minify", config.DefaultReporterMinify, "Minify generated HTML")
	fs.BoolVar(&f.WritePatch, "patch", config.DefaultReporterWritePatch, "Write a .patch file next to each comparison page")
	fs.IntVar(&f.Workers, "workers", config.DefaultBatchMaxWorkers, "Number of file pairs compared in parallel")
	fs.IntVar(&f.TabSize, "tab-size", config.DefaultReporterTabSize, "Tab width used when rendering code")
}

// applyOverrides copies explicitly set flags into cfg.
func (f *AppFlags) applyOverrides(cmd *cobra.Command, cfg *config.GlobalConfig) {
	changed := func(name string) bool {
		return cmd.Flags().Changed(name)
	}

	if changed("log-level") {
		cfg.LogConfig.LogLevel = f.LogLevel
	}
	if changed("no-open") && f.NoOpen {
		cfg.ReporterConfig.OpenBrowser = false
	}
	if changed("wrap") {
		cfg.DiffConfig.WrapWidth = f.WrapWidth
	}
	if changed("threshold") {
		cfg.DiffConfig.SimilarityThreshold = f.SimilarityThreshold
	}
	if changed("context") {
		cfg.DiffConfig.ContextOnly = f.ContextOnly
	}
	if changed("context-lines") {
		cfg.DiffConfig.ContextLines = f.ContextLines
	}
	if changed("minify") {
		cfg.ReporterConfig.Minify = f.Minify
	}
	if changed("patch") {
		cfg.ReporterConfig.WritePatch = f.WritePatch
	}
	if changed("workers") {
		cfg.BatchConfig.MaxWorkers = f.Workers
	}
	if changed("tab-size") {
		cfg.ReporterConfig.TabSize = f.TabSize
	}
}
