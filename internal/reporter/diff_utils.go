package reporter

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/aleister1102/irdiff/internal/models"
)

// DiffUtils turns aligned rows into template views
type DiffUtils struct{}

// NewDiffUtils creates a new DiffUtils
func NewDiffUtils() *DiffUtils {
	return &DiffUtils{}
}

// BuildRows converts aligned rows into row views
func (du *DiffUtils) BuildRows(rows []models.AlignedRow) []RowView {
	views := make([]RowView, 0, len(rows))
	for _, row := range rows {
		views = append(views, RowView{
			Kind:    row.Kind.String(),
			Skipped: row.Skipped,
			Left:    du.buildCell(row.Left),
			Right:   du.buildCell(row.Right),
		})
	}
	return views
}

func (du *DiffUtils) buildCell(cell *models.Cell) CellView {
	if cell == nil {
		return CellView{Empty: true}
	}
	segments := make([]template.HTML, 0, len(cell.Segments))
	for _, seg := range cell.Segments {
		segments = append(segments, du.GenerateSegmentHTML(seg))
	}
	return CellView{LineNumber: cell.LineNumber, Segments: segments}
}

// GenerateSegmentHTML escapes a segment and wraps added or removed ranges in
// spans. The line terminator is not displayed.
func (du *DiffUtils) GenerateSegmentHTML(seg models.WrappedSegment) template.HTML {
	text, _ := models.SplitTerminator(seg.Text)

	var b strings.Builder
	pos := 0
	for _, h := range seg.Highlights {
		start, end := max(h.Start, pos), min(h.End, len(text))
		if start >= end {
			continue
		}
		b.WriteString(template.HTMLEscapeString(text[pos:start]))
		escaped := template.HTMLEscapeString(text[start:end])
		switch h.Tag {
		case models.HighlightAdded:
			fmt.Fprintf(&b, `<span class="hl-added">%s</span>`, escaped)
		case models.HighlightRemoved:
			fmt.Fprintf(&b, `<span class="hl-removed">%s</span>`, escaped)
		default:
			b.WriteString(escaped)
		}
		pos = end
	}
	b.WriteString(template.HTMLEscapeString(text[pos:]))
	return template.HTML(b.String())
}

// CreateDiffSummary creates text summary of a comparison
func (du *DiffUtils) CreateDiffSummary(stats models.Stats) string {
	if stats.Identical {
		return "No textual changes detected."
	}
	return fmt.Sprintf("%d added, %d removed, %d changed, %d unchanged.", stats.Added, stats.Removed, stats.Changed, stats.Unchanged)
}
