package models

// HighlightTag marks how a byte range of a line relates to the other side.
type HighlightTag int

const (
	HighlightUnchanged HighlightTag = iota
	HighlightAdded
	HighlightRemoved
)

// String returns the CSS-friendly name of the tag.
func (t HighlightTag) String() string {
	switch t {
	case HighlightAdded:
		return "added"
	case HighlightRemoved:
		return "removed"
	default:
		return "unchanged"
	}
}

// Highlight is a half-open byte range [Start, End) within one line or segment.
type Highlight struct {
	Start int          `json:"start"`
	End   int          `json:"end"`
	Tag   HighlightTag `json:"tag"`
}

// Len returns the width of the range in bytes.
func (h Highlight) Len() int { return h.End - h.Start }

// WholeLine returns a single highlight covering text, or nil when text is empty.
func WholeLine(text string, tag HighlightTag) []Highlight {
	if text == "" {
		return nil
	}
	return []Highlight{{Start: 0, End: len(text), Tag: tag}}
}

// AppendHighlight appends h to hs, merging it into the last range when the
// two touch and share a tag. Empty ranges are dropped.
func AppendHighlight(hs []Highlight, h Highlight) []Highlight {
	if h.End <= h.Start {
		return hs
	}
	if n := len(hs); n > 0 && hs[n-1].Tag == h.Tag && hs[n-1].End == h.Start {
		hs[n-1].End = h.End
		return hs
	}
	return append(hs, h)
}
