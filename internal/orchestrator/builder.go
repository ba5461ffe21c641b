package orchestrator

import (
	"github.com/aleister1102/irdiff/internal/common/file"
	"github.com/aleister1102/irdiff/internal/config"
	"github.com/aleister1102/irdiff/internal/differ"
	"github.com/aleister1102/irdiff/internal/reporter"
	"github.com/rs/zerolog"
)

// OrchestratorBuilder provides a fluent interface for creating an Orchestrator
type OrchestratorBuilder struct {
	logger           zerolog.Logger
	cfg              *config.GlobalConfig
	comparisonWriter ComparisonWriter
	indexWriter      IndexWriter
}

// NewOrchestratorBuilder creates a new builder with default configuration
func NewOrchestratorBuilder(logger zerolog.Logger) *OrchestratorBuilder {
	return &OrchestratorBuilder{
		logger: logger,
		cfg:    config.NewDefaultGlobalConfig(),
	}
}

// WithConfig sets the global configuration
func (b *OrchestratorBuilder) WithConfig(cfg *config.GlobalConfig) *OrchestratorBuilder {
	if cfg != nil {
		b.cfg = cfg
	}
	return b
}

// WithComparisonWriter replaces the HTML reporter used for comparison pages
func (b *OrchestratorBuilder) WithComparisonWriter(w ComparisonWriter) *OrchestratorBuilder {
	b.comparisonWriter = w
	return b
}

// WithIndexWriter replaces the HTML reporter used for the index
func (b *OrchestratorBuilder) WithIndexWriter(w IndexWriter) *OrchestratorBuilder {
	b.indexWriter = w
	return b
}

// Build creates a new Orchestrator instance
func (b *OrchestratorBuilder) Build() (*Orchestrator, error) {
	componentLogger := b.logger.With().Str("component", "Orchestrator").Logger()

	contentDiffer, err := differ.NewContentDifferBuilder(b.logger).
		WithDiffConfig(b.cfg.DiffConfig).
		WithTabSize(b.cfg.ReporterConfig.TabSize).
		Build()
	if err != nil {
		return nil, err
	}

	comparisonWriter := b.comparisonWriter
	if comparisonWriter == nil {
		if comparisonWriter, err = reporter.NewHtmlDiffReporter(b.logger, b.cfg.ReporterConfig); err != nil {
			return nil, err
		}
	}
	indexWriter := b.indexWriter
	if indexWriter == nil {
		if indexWriter, err = reporter.NewIndexReporter(b.logger, b.cfg.ReporterConfig); err != nil {
			return nil, err
		}
	}

	var patchExporter *differ.PatchExporter
	if b.cfg.ReporterConfig.WritePatch {
		patchExporter = differ.NewPatchExporter()
	}

	loader := file.NewSourceLoader(b.logger, file.FileReadOptions{MaxSize: b.cfg.DiffConfig.MaxFileSizeBytes()})

	return &Orchestrator{
		cfg:         b.cfg,
		logger:      componentLogger,
		validator:   file.NewFileValidator(b.logger),
		processor:   NewPairProcessor(b.logger, loader, contentDiffer, comparisonWriter, patchExporter),
		indexWriter: indexWriter,
	}, nil
}
