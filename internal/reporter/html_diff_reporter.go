package reporter

import (
	"html/template"
	"io"

	"github.com/aleister1102/irdiff/internal/common/errorwrapper"
	"github.com/aleister1102/irdiff/internal/config"
	"github.com/aleister1102/irdiff/internal/models"
	"github.com/rs/zerolog"
)

// HtmlDiffReporter renders one Comparison as a self-contained side-by-side page.
// Output depends only on the Comparison and the reporter configuration.
type HtmlDiffReporter struct {
	logger    zerolog.Logger
	writer    *reportWriter
	diffUtils *DiffUtils
	css       template.CSS
}

// NewHtmlDiffReporter creates a new instance of HtmlDiffReporter
func NewHtmlDiffReporter(logger zerolog.Logger, cfg config.ReporterConfig) (*HtmlDiffReporter, error) {
	componentLogger := logger.With().Str("component", "HtmlDiffReporter").Logger()

	tmpl, err := parseTemplate(ComparisonTemplateName, GetDiffTemplateFunctions())
	if err != nil {
		return nil, err
	}

	css, err := NewAssetManager(componentLogger).StylesheetWithTabSize(EmbeddedDiffCSSPath, cfg.TabSize)
	if err != nil {
		return nil, err
	}

	return &HtmlDiffReporter{
		logger:    componentLogger,
		writer:    newReportWriter(componentLogger, tmpl, ComparisonTemplateName, cfg.Minify),
		diffUtils: NewDiffUtils(),
		css:       css,
	}, nil
}

// Render writes the HTML page for cmp to w
func (r *HtmlDiffReporter) Render(w io.Writer, cmp *models.Comparison) error {
	if cmp == nil {
		return errorwrapper.NewValidationError("comparison", nil, "comparison cannot be nil")
	}
	return r.writer.writeTo(w, r.createPageData(cmp))
}

// WriteComparison renders cmp into outputPath, creating parent directories
func (r *HtmlDiffReporter) WriteComparison(cmp *models.Comparison, outputPath string) (string, error) {
	if cmp == nil {
		return "", errorwrapper.NewValidationError("comparison", nil, "comparison cannot be nil")
	}
	if err := r.writer.writeFile(outputPath, r.createPageData(cmp)); err != nil {
		return "", errorwrapper.WrapError(err, "failed to write comparison report")
	}

	r.logger.Info().
		Str("path", outputPath).
		Str("left", cmp.Label1).
		Str("right", cmp.Label2).
		Int("rows", len(cmp.Rows)).
		Msg("Comparison report written")
	return outputPath, nil
}

func (r *HtmlDiffReporter) createPageData(cmp *models.Comparison) ComparisonPageData {
	return ComparisonPageData{
		Title:       cmp.Label1 + " vs " + cmp.Label2,
		Label1:      cmp.Label1,
		Label2:      cmp.Label2,
		CSS:         r.css,
		Stats:       cmp.Stats,
		ContextOnly: cmp.ContextOnly,
		Rows:        r.diffUtils.BuildRows(cmp.Rows),
	}
}
