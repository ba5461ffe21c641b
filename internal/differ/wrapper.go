package differ

import (
	"strings"

	"github.com/aleister1102/irdiff/internal/models"
	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

const (
	// DefaultWrapWidth is the display width lines are wrapped at.
	DefaultWrapWidth = 120
	// DefaultTabSize matches the tab-size pages are rendered with by default.
	DefaultTabSize = 4
)

// LineWrapper cuts long lines into display segments on grapheme boundaries.
type LineWrapper struct {
	width   int
	tabSize int
	cond    *runewidth.Condition
}

// NewLineWrapper creates a wrapper for the given column width. A width of
// zero or less disables wrapping.
func NewLineWrapper(width int) *LineWrapper {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true
	return &LineWrapper{width: width, tabSize: DefaultTabSize, cond: cond}
}

// WithTabSize sets how many columns a tab stop spans; n < 1 keeps the current value.
// Every segment is rendered as its own block, so tab stops restart at each segment.
func (lw *LineWrapper) WithTabSize(n int) *LineWrapper {
	if n >= 1 {
		lw.tabSize = n
	}
	return lw
}

// Width returns the configured wrap width.
func (lw *LineWrapper) Width() int {
	return lw.width
}

// Wrap splits line into segments of at most width columns and remaps
// highlights onto them. The terminator stays on the last segment.
func (lw *LineWrapper) Wrap(lineNumber int, line string, highlights []models.Highlight) []models.WrappedSegment {
	bounds := lw.breakpoints(line)

	segments := make([]models.WrappedSegment, 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		start, end := bounds[i], bounds[i+1]
		segments = append(segments, models.WrappedSegment{
			LineNumber: lineNumber,
			Index:      i,
			Text:       line[start:end],
			Highlights: clipHighlights(highlights, start, end),
		})
	}
	return segments
}

// breakpoints returns the segment boundaries of line as byte offsets,
// starting with 0 and ending with len(line). There are always at least two.
func (lw *LineWrapper) breakpoints(line string) []int {
	content, _ := models.SplitTerminator(line)

	// Without tabs display width never exceeds byte length, so short lines need no scan.
	if lw.width <= 0 || (len(content) <= lw.width && !strings.Contains(content, "\t")) {
		return []int{0, len(line)}
	}

	bounds := []int{0}
	col := 0
	iter := graphemes.FromString(content)
	for iter.Next() {
		w := lw.graphemeWidth(iter.Value(), col)
		if col > 0 && col+w > lw.width {
			bounds = append(bounds, iter.Start())
			col = 0
			w = lw.graphemeWidth(iter.Value(), col)
		}
		col += w
	}
	return append(bounds, len(line))
}

// graphemeWidth is the number of columns g occupies when it starts at col.
// A tab advances to the next tab stop; anything else takes at least one column.
func (lw *LineWrapper) graphemeWidth(g string, col int) int {
	if g == "\t" {
		return lw.tabSize - col%lw.tabSize
	}
	return max(lw.cond.StringWidth(g), 1)
}

// clipHighlights intersects hs with [start,end) and shifts the result to
// segment-local offsets.
func clipHighlights(hs []models.Highlight, start, end int) []models.Highlight {
	var out []models.Highlight
	for _, h := range hs {
		lo, hi := max(h.Start, start), min(h.End, end)
		if lo >= hi {
			continue
		}
		out = append(out, models.Highlight{Start: lo - start, End: hi - start, Tag: h.Tag})
	}
	return out
}
