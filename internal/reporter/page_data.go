package reporter

import (
	"html/template"

	"github.com/aleister1102/irdiff/internal/models"
)

// ComparisonPageData feeds the comparison template
type ComparisonPageData struct {
	Title       string
	Label1      string
	Label2      string
	CSS         template.CSS
	Stats       models.Stats
	ContextOnly bool
	Rows        []RowView
}

// RowView is one table row; Kind doubles as the CSS class suffix
type RowView struct {
	Kind    string
	Skipped int
	Left    CellView
	Right   CellView
}

// CellView is one side of a row with pre-escaped segment markup
type CellView struct {
	Empty      bool
	LineNumber int
	Segments   []template.HTML
}

// IndexPageData feeds the index template
type IndexPageData struct {
	Title    string
	CSS      template.CSS
	Entries  []models.ComparisonEntry
	Failures []models.ComparisonFailure
}
