package differ

import (
	"github.com/aleister1102/irdiff/internal/models"
)

// DefaultSimilarityThreshold is the ratio below which a changed line pair is
// shown as a whole-line removal and addition.
const DefaultSimilarityThreshold = 0.6

// IntralineRefiner computes character-level highlights for a changed line pair.
type IntralineRefiner struct {
	threshold float64
}

// NewIntralineRefiner creates a refiner; a threshold outside [0,1] falls back to the default.
func NewIntralineRefiner(threshold float64) *IntralineRefiner {
	if threshold < 0 || threshold > 1 {
		threshold = DefaultSimilarityThreshold
	}
	return &IntralineRefiner{threshold: threshold}
}

// Threshold returns the effective similarity threshold.
func (r *IntralineRefiner) Threshold() float64 {
	return r.threshold
}

// Refine returns highlights for left and right. Offsets are bytes; each
// result covers its line exactly, without empty ranges.
func (r *IntralineRefiner) Refine(left, right string) (lh, rh []models.Highlight) {
	lr, rr := []rune(left), []rune(right)
	m := NewMatcher(lr, rr, false)

	if m.Ratio() < r.threshold {
		return models.WholeLine(left, models.HighlightRemoved), models.WholeLine(right, models.HighlightAdded)
	}

	loff := runeOffsets(left, len(lr))
	roff := runeOffsets(right, len(rr))

	for _, op := range m.Operations() {
		ls, le := loff[op.LeftStart], loff[op.LeftEnd]
		rs, re := roff[op.RightStart], roff[op.RightEnd]
		switch op.Kind {
		case models.OpEqual:
			lh = models.AppendHighlight(lh, models.Highlight{Start: ls, End: le, Tag: models.HighlightUnchanged})
			rh = models.AppendHighlight(rh, models.Highlight{Start: rs, End: re, Tag: models.HighlightUnchanged})
		case models.OpDelete:
			lh = models.AppendHighlight(lh, models.Highlight{Start: ls, End: le, Tag: models.HighlightRemoved})
		case models.OpInsert:
			rh = models.AppendHighlight(rh, models.Highlight{Start: rs, End: re, Tag: models.HighlightAdded})
		case models.OpReplace:
			lh = models.AppendHighlight(lh, models.Highlight{Start: ls, End: le, Tag: models.HighlightRemoved})
			rh = models.AppendHighlight(rh, models.Highlight{Start: rs, End: re, Tag: models.HighlightAdded})
		}
	}
	return lh, rh
}

// Similarity returns the character-level ratio of two lines.
func (r *IntralineRefiner) Similarity(left, right string) float64 {
	return NewMatcher([]rune(left), []rune(right), false).Ratio()
}

// runeOffsets maps rune index -> byte offset, with offs[n] = len(s).
// Ranging a string and converting it to []rune agree on invalid bytes.
func runeOffsets(s string, n int) []int {
	offs := make([]int, 0, n+1)
	for i := range s {
		offs = append(offs, i)
	}
	offs = append(offs, len(s))
	return offs
}
