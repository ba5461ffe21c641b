package orchestrator

import (
	"fmt"
	"path/filepath"

	"github.com/aleister1102/irdiff/internal/common/errorwrapper"
	"github.com/aleister1102/irdiff/internal/common/file"
	"github.com/aleister1102/irdiff/internal/differ"
	"github.com/aleister1102/irdiff/internal/models"
	"github.com/aleister1102/irdiff/internal/reporter"
	"github.com/rs/zerolog"
)

// ComparisonWriter persists one rendered comparison and returns the path written.
type ComparisonWriter interface {
	WriteComparison(cmp *models.Comparison, outputPath string) (string, error)
}

// IndexWriter persists the batch index and returns the path written.
type IndexWriter interface {
	WriteIndex(outputPath string, entries []models.ComparisonEntry, failures []models.ComparisonFailure) (string, error)
}

// PairProcessor loads, compares and writes a single Pair. It is safe for
// concurrent use as long as its writers are.
type PairProcessor struct {
	logger        zerolog.Logger
	loader        *file.SourceLoader
	differ        *differ.ContentDiffer
	writer        ComparisonWriter
	patchExporter *differ.PatchExporter
	fileWriter    *file.FileWriter
}

// NewPairProcessor creates a PairProcessor. patchExporter may be nil to skip
// the sidecar patch.
func NewPairProcessor(
	logger zerolog.Logger,
	loader *file.SourceLoader,
	contentDiffer *differ.ContentDiffer,
	writer ComparisonWriter,
	patchExporter *differ.PatchExporter,
) *PairProcessor {
	return &PairProcessor{
		logger:        logger.With().Str("component", "PairProcessor").Logger(),
		loader:        loader,
		differ:        contentDiffer,
		writer:        writer,
		patchExporter: patchExporter,
		fileWriter:    file.NewFileWriter(logger),
	}
}

// Process runs one pair end to end. The entry links to the page by its base
// name, since pages and the index share a directory.
func (pp *PairProcessor) Process(pair Pair) (models.ComparisonEntry, error) {
	left, err := pp.loader.Load(pair.LeftPath, pair.Label1)
	if err != nil {
		return models.ComparisonEntry{}, errorwrapper.WrapError(err, "failed to load left input")
	}
	right, err := pp.loader.Load(pair.RightPath, pair.Label2)
	if err != nil {
		return models.ComparisonEntry{}, errorwrapper.WrapError(err, "failed to load right input")
	}

	cmp, err := pp.differ.Compare(left, right)
	if err != nil {
		return models.ComparisonEntry{}, err
	}

	outputPath, err := pp.writer.WriteComparison(cmp, pair.OutputPath)
	if err != nil {
		return models.ComparisonEntry{}, err
	}

	if pp.patchExporter != nil {
		if err := pp.writePatch(left, right, reporter.PatchPath(outputPath)); err != nil {
			return models.ComparisonEntry{}, err
		}
	}

	pp.logger.Debug().
		Str("left", pair.Label1).
		Str("right", pair.Label2).
		Int("added", cmp.Stats.Added).
		Int("removed", cmp.Stats.Removed).
		Int("changed", cmp.Stats.Changed).
		Msg("Pair processed")

	return models.ComparisonEntry{
		Label1: cmp.Label1,
		Label2: cmp.Label2,
		Link:   filepath.Base(outputPath),
		Stats:  cmp.Stats,
	}, nil
}

func (pp *PairProcessor) writePatch(left, right *models.Document, path string) error {
	patch := pp.patchExporter.Export(left, right)
	opts := file.DefaultFileWriteOptions()
	opts.Permissions = reporter.FilePermissions
	if err := pp.fileWriter.WriteFile(path, []byte(patch), opts); err != nil {
		return fmt.Errorf("failed to write patch for %s: %w", left.Label, err)
	}
	return nil
}
