package differ

import (
	"github.com/aleister1102/irdiff/internal/config"
	"github.com/rs/zerolog"
)

// ContentDifferBuilder provides a fluent interface for creating ContentDiffer
type ContentDifferBuilder struct {
	logger  zerolog.Logger
	cfg     config.DiffConfig
	tabSize int
}

// NewContentDifferBuilder creates a new builder with default settings
func NewContentDifferBuilder(logger zerolog.Logger) *ContentDifferBuilder {
	return &ContentDifferBuilder{
		logger:  logger.With().Str("component", "ContentDiffer").Logger(),
		cfg:     config.NewDefaultDiffConfig(),
		tabSize: DefaultTabSize,
	}
}

// WithDiffConfig sets the diff configuration
func (b *ContentDifferBuilder) WithDiffConfig(cfg config.DiffConfig) *ContentDifferBuilder {
	b.cfg = cfg
	return b
}

// WithTabSize sets the tab stop width used when measuring lines for wrapping.
// It should match the tab size pages are rendered with.
func (b *ContentDifferBuilder) WithTabSize(n int) *ContentDifferBuilder {
	b.tabSize = n
	return b
}

// Build creates a new ContentDiffer instance
func (b *ContentDifferBuilder) Build() (*ContentDiffer, error) {
	if err := ValidateDiffConfig(b.cfg); err != nil {
		return nil, err
	}

	refiner := NewIntralineRefiner(b.cfg.SimilarityThreshold)
	wrapper := NewLineWrapper(b.cfg.WrapWidth).WithTabSize(b.tabSize)

	return &ContentDiffer{
		logger:          b.logger,
		cfg:             b.cfg,
		aligner:         NewAligner(refiner, wrapper),
		grouper:         NewContextGrouper(b.cfg.ContextLines),
		statsCalculator: NewDiffStatsCalculator(),
		sizeValidator:   NewContentSizeValidator(b.cfg.MaxFileSizeBytes()),
		inputValidator:  NewInputValidator(),
	}, nil
}
