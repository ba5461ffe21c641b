package reporter

import (
	"cmp"
	"html/template"
	"io"
	"slices"

	"github.com/aleister1102/irdiff/internal/common/errorwrapper"
	"github.com/aleister1102/irdiff/internal/config"
	"github.com/aleister1102/irdiff/internal/models"
	"github.com/rs/zerolog"
)

// IndexReporter renders the batch index page linking to every comparison
type IndexReporter struct {
	logger zerolog.Logger
	writer *reportWriter
	title  string
	css    template.CSS
}

// NewIndexReporter creates a new IndexReporter
func NewIndexReporter(logger zerolog.Logger, cfg config.ReporterConfig) (*IndexReporter, error) {
	componentLogger := logger.With().Str("component", "IndexReporter").Logger()

	tmpl, err := parseTemplate(IndexTemplateName, GetCommonTemplateFunctions())
	if err != nil {
		return nil, err
	}

	css, err := NewAssetManager(componentLogger).EmbedAssetContent(EmbeddedIndexCSSPath)
	if err != nil {
		return nil, err
	}

	title := cfg.IndexTitle
	if title == "" {
		title = DefaultIndexTitle
	}

	return &IndexReporter{
		logger: componentLogger,
		writer: newReportWriter(componentLogger, tmpl, IndexTemplateName, cfg.Minify),
		title:  title,
		css:    template.CSS(css),
	}, nil
}

// Render writes the index for entries and failures to w. Both lists are shown
// sorted by their labels.
func (r *IndexReporter) Render(w io.Writer, entries []models.ComparisonEntry, failures []models.ComparisonFailure) error {
	return r.writer.writeTo(w, r.createPageData(entries, failures))
}

// WriteIndex renders the index into outputPath
func (r *IndexReporter) WriteIndex(outputPath string, entries []models.ComparisonEntry, failures []models.ComparisonFailure) (string, error) {
	if err := r.writer.writeFile(outputPath, r.createPageData(entries, failures)); err != nil {
		return "", errorwrapper.WrapError(err, "failed to write index")
	}

	r.logger.Info().
		Str("path", outputPath).
		Int("entries", len(entries)).
		Int("failures", len(failures)).
		Msg("Index written")
	return outputPath, nil
}

func (r *IndexReporter) createPageData(entries []models.ComparisonEntry, failures []models.ComparisonFailure) IndexPageData {
	return IndexPageData{
		Title:    r.title,
		CSS:      r.css,
		Entries:  SortEntries(entries),
		Failures: SortFailures(failures),
	}
}

// SortEntries returns a copy of entries ordered by (Label1, Label2)
func SortEntries(entries []models.ComparisonEntry) []models.ComparisonEntry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b models.ComparisonEntry) int {
		return cmp.Or(cmp.Compare(a.Label1, b.Label1), cmp.Compare(a.Label2, b.Label2))
	})
	return sorted
}

// SortFailures returns a copy of failures ordered by (Label1, Label2)
func SortFailures(failures []models.ComparisonFailure) []models.ComparisonFailure {
	sorted := slices.Clone(failures)
	slices.SortStableFunc(sorted, func(a, b models.ComparisonFailure) int {
		return cmp.Or(cmp.Compare(a.Label1, b.Label1), cmp.Compare(a.Label2, b.Label2))
	})
	return sorted
}
