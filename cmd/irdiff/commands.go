package main

import (
	"context"
	"fmt"

	"github.com/aleister1102/irdiff/internal/browser"
	"github.com/aleister1102/irdiff/internal/config"
	"github.com/aleister1102/irdiff/internal/logger"
	"github.com/aleister1102/irdiff/internal/models"
	"github.com/aleister1102/irdiff/internal/orchestrator"
	"github.com/aleister1102/irdiff/internal/watcher"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app is everything a subcommand needs once configuration is resolved.
type app struct {
	cfg          *config.GlobalConfig
	logger       zerolog.Logger
	orchestrator *orchestrator.Orchestrator
}

func newRootCommand() *cobra.Command {
	flags := &AppFlags{}

	rootCmd := &cobra.Command{
		Use:          "irdiff",
		Short:        "Generate side-by-side HTML comparisons of compiler IR dumps",
		SilenceUsage: true,
	}
	flags.register(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newCompareCommand(flags))
	rootCmd.AddCommand(newAllCommand(flags))
	rootCmd.AddCommand(newWatchCommand(flags))
	return rootCmd
}

func newCompareCommand(flags *AppFlags) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "compare <path1> <path2>",
		Short: "Compare two files, or the matching IR files of two directories",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			result, err := a.orchestrator.Run(cmd.Context(), args[0], args[1], output)
			if err != nil {
				return err
			}
			a.report(cmd, result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output HTML file for two files, or output directory for two directories")
	return cmd
}

func newAllCommand(flags *AppFlags) *cobra.Command {
	var outputDir string
	cmd := &cobra.Command{
		Use:   "all <directory>",
		Short: "Compare every two IR files with the same extension in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			result, err := a.orchestrator.RunAll(cmd.Context(), args[0], outputDir)
			if err != nil {
				return err
			}
			a.report(cmd, result)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Output directory for HTML files")
	return cmd
}

func newWatchCommand(flags *AppFlags) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "watch <path1> <path2>",
		Short: "Compare two paths and regenerate the result whenever an input changes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, flags)
			if err != nil {
				return err
			}

			run := func(ctx context.Context) (*models.BatchResult, error) {
				return a.orchestrator.Run(ctx, args[0], args[1], output)
			}

			result, err := run(cmd.Context())
			if err != nil {
				return err
			}
			a.report(cmd, result)

			w, err := watcher.New(a.logger, args, a.cfg.InputConfig.Extensions, watcher.DefaultDebounce)
			if err != nil {
				return err
			}
			defer w.Close()

			fmt.Fprintln(cmd.OutOrStdout(), "Watching for changes, press Ctrl-C to stop")
			return w.Run(cmd.Context(), func(ctx context.Context) error {
				_, err := run(ctx)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output HTML file for two files, or output directory for two directories")
	return cmd
}

// setup loads configuration, applies flag overrides, validates the result
// and builds the logger and orchestrator.
func setup(cmd *cobra.Command, flags *AppFlags) (*app, error) {
	bootLogger, err := logger.New(config.NewDefaultLogConfig())
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile, bootLogger)
	if err != nil {
		return nil, fmt.Errorf("could not load config: %w", err)
	}
	flags.applyOverrides(cmd, cfg)

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	zLogger, err := logger.New(cfg.LogConfig)
	if err != nil {
		return nil, fmt.Errorf("could not initialize logger: %w", err)
	}

	orch, err := orchestrator.NewOrchestrator(cfg, zLogger)
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, logger: zLogger, orchestrator: orch}, nil
}

// report prints where the result went and opens it when configured to.
func (a *app) report(cmd *cobra.Command, result *models.BatchResult) {
	out := cmd.OutOrStdout()

	target := result.OutputPath
	if target != "" {
		fmt.Fprintf(out, "Comparison saved to: %s\n", target)
	} else {
		target = result.IndexPath
		fmt.Fprintf(out, "Generated %d comparisons\n", len(result.Entries))
		if len(result.Failures) > 0 {
			fmt.Fprintf(out, "%d comparisons failed, see the index for details\n", len(result.Failures))
		}
		fmt.Fprintf(out, "Index page saved to: %s\n", target)
	}

	if !a.cfg.ReporterConfig.OpenBrowser || target == "" {
		return
	}
	if err := browser.OpenFile(target); err != nil {
		a.logger.Warn().Err(err).Str("path", target).Msg("Could not open browser")
	}
}
