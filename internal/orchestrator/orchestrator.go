package orchestrator

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/aleister1102/irdiff/internal/common/errorwrapper"
	"github.com/aleister1102/irdiff/internal/common/file"
	"github.com/aleister1102/irdiff/internal/config"
	"github.com/aleister1102/irdiff/internal/models"
	"github.com/aleister1102/irdiff/internal/reporter"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Orchestrator decides what to compare from the given paths, hands each pair
// to the PairProcessor and writes the index for batch runs.
type Orchestrator struct {
	cfg         *config.GlobalConfig
	logger      zerolog.Logger
	validator   *file.FileValidator
	processor   *PairProcessor
	indexWriter IndexWriter
}

// NewOrchestrator creates an Orchestrator with the HTML reporters
func NewOrchestrator(cfg *config.GlobalConfig, logger zerolog.Logger) (*Orchestrator, error) {
	return NewOrchestratorBuilder(logger).WithConfig(cfg).Build()
}

// Run compares path1 with path2. Two files give a single page at output (or
// the default name in the configured output directory). Two directories give
// one page per shared basename plus an index, all under output.
func (o *Orchestrator) Run(ctx context.Context, path1, path2, output string) (*models.BatchResult, error) {
	info1, err := o.validator.GetFileInfo(path1)
	if err != nil {
		return nil, err
	}
	info2, err := o.validator.GetFileInfo(path2)
	if err != nil {
		return nil, err
	}

	switch {
	case !info1.IsDir && !info2.IsDir:
		return o.runFilePair(ctx, path1, path2, output)
	case info1.IsDir && info2.IsDir:
		return o.runDirectories(ctx, path1, path2, output)
	default:
		return nil, errorwrapper.NewInvalidComparisonError(path1, path2, "cannot compare a file with a directory")
	}
}

// RunAll compares every two files of the same extension inside dir and
// writes an index next to the pages.
func (o *Orchestrator) RunAll(ctx context.Context, dir, outputDir string) (*models.BatchResult, error) {
	info, err := o.validator.GetFileInfo(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir {
		return nil, errorwrapper.NewValidationError("directory", dir, "is not a directory")
	}

	pb := reporter.NewPathBuilder(o.outputDir(outputDir))
	pairs, err := SameExtensionPairs(dir, o.cfg.InputConfig.Extensions, pb)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		o.logger.Info().Str("directory", dir).Msg("No IR files found for comparison")
	}
	return o.runBatch(ctx, pairs, pb)
}

func (o *Orchestrator) runFilePair(ctx context.Context, path1, path2, output string) (*models.BatchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name1, name2 := filepath.Base(path1), filepath.Base(path2)
	if output == "" {
		output = reporter.NewPathBuilder(o.cfg.ReporterConfig.OutputDir).PairReportPath(name1, name2)
	}

	entry, err := o.processor.Process(Pair{
		LeftPath:   path1,
		RightPath:  path2,
		Label1:     name1,
		Label2:     name2,
		OutputPath: output,
	})
	if err != nil {
		return nil, err
	}

	return &models.BatchResult{
		Entries:    []models.ComparisonEntry{entry},
		OutputPath: output,
	}, nil
}

func (o *Orchestrator) runDirectories(ctx context.Context, dir1, dir2, outputDir string) (*models.BatchResult, error) {
	pb := reporter.NewPathBuilder(o.outputDir(outputDir))
	pairs, err := MatchDirectories(dir1, dir2, o.cfg.InputConfig.Extensions, pb)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		o.logger.Info().Str("dir1", dir1).Str("dir2", dir2).Msg("No matching IR files found between the directories")
	}
	return o.runBatch(ctx, pairs, pb)
}

// runBatch processes pairs on a bounded pool. A failing pair is recorded and
// skipped; only cancellation aborts the batch.
func (o *Orchestrator) runBatch(ctx context.Context, pairs []Pair, pb *reporter.PathBuilder) (*models.BatchResult, error) {
	startTime := time.Now()
	workers := o.cfg.BatchConfig.Workers()

	o.logger.Info().
		Int("pairs", len(pairs)).
		Int("workers", workers).
		Str("output_dir", pb.OutputDir()).
		Msg("Starting batch comparison")

	var (
		mu       sync.Mutex
		entries  []models.ComparisonEntry
		failures []models.ComparisonFailure
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, pair := range pairs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			entry, err := o.processor.Process(pair)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				o.logger.Error().
					Err(err).
					Str("left", pair.Label1).
					Str("right", pair.Label2).
					Msg("Comparison failed, continuing with remaining pairs")
				failures = append(failures, models.ComparisonFailure{
					Label1: pair.Label1,
					Label2: pair.Label2,
					Error:  err.Error(),
				})
				return nil
			}
			entries = append(entries, entry)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		o.logger.Info().Err(err).Msg("Batch comparison interrupted")
		return nil, err
	}

	entries = reporter.SortEntries(entries)
	failures = reporter.SortFailures(failures)

	indexPath, err := o.indexWriter.WriteIndex(pb.IndexPath(), entries, failures)
	if err != nil {
		return nil, err
	}

	o.logger.Info().
		Int("compared", len(entries)).
		Int("failed", len(failures)).
		Str("index", indexPath).
		Dur("duration", time.Since(startTime)).
		Msg("Batch comparison completed")

	return &models.BatchResult{
		Entries:   entries,
		Failures:  failures,
		IndexPath: indexPath,
	}, nil
}

func (o *Orchestrator) outputDir(output string) string {
	if output != "" {
		return output
	}
	return o.cfg.ReporterConfig.OutputDir
}
