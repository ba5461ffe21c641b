package differ

import (
	"time"

	"github.com/aleister1102/irdiff/internal/common/errorwrapper"
	"github.com/aleister1102/irdiff/internal/config"
	"github.com/aleister1102/irdiff/internal/models"
	"github.com/rs/zerolog"
)

// ContentDiffer runs the full pipeline for one document pair: line diff,
// intraline refinement, wrapping, alignment and optional context collapsing.
// It holds no per-comparison state and may be shared between goroutines.
type ContentDiffer struct {
	logger          zerolog.Logger
	cfg             config.DiffConfig
	aligner         *Aligner
	grouper         *ContextGrouper
	statsCalculator *DiffStatsCalculator
	sizeValidator   *ContentSizeValidator
	inputValidator  *InputValidator
}

// NewContentDiffer creates a ContentDiffer from the diff configuration
func NewContentDiffer(logger zerolog.Logger, cfg config.DiffConfig) (*ContentDiffer, error) {
	return NewContentDifferBuilder(logger).
		WithDiffConfig(cfg).
		Build()
}

// Config returns the configuration the pipeline was built with
func (cd *ContentDiffer) Config() config.DiffConfig {
	return cd.cfg
}

// Compare produces the Comparison of left against right.
func (cd *ContentDiffer) Compare(left, right *models.Document) (*models.Comparison, error) {
	startTime := time.Now()

	if err := cd.validateInputs(left, right); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to validate diff inputs")
	}

	matcher := NewMatcher(left.Lines, right.Lines, cd.cfg.AutoJunk)
	ops := matcher.Operations()
	stats := cd.statsCalculator.CalculateStats(ops, matcher.Ratio())

	var rows []models.AlignedRow
	if cd.cfg.ContextOnly {
		rows = cd.aligner.AlignGroups(cd.grouper.Group(ops), left, right)
	} else {
		rows = cd.aligner.Align(ops, left, right)
	}

	cd.logger.Debug().
		Str("left", left.Label).
		Str("right", right.Label).
		Int("operations", len(ops)).
		Int("rows", len(rows)).
		Dur("duration", time.Since(startTime)).
		Msg("Comparison computed")

	return &models.Comparison{
		Label1:      left.Label,
		Label2:      right.Label,
		Rows:        rows,
		Stats:       stats,
		ContextOnly: cd.cfg.ContextOnly,
	}, nil
}

func (cd *ContentDiffer) validateInputs(left, right *models.Document) error {
	if err := cd.inputValidator.ValidateInputs(left, right); err != nil {
		return err
	}
	return cd.sizeValidator.ValidateSize(left, right)
}
