package models

// RowKind classifies a side-by-side row.
type RowKind int

const (
	RowEqual RowKind = iota
	RowAdded
	RowRemoved
	RowChanged
	// RowEmpty has no cells; it stands for a collapsed run of unchanged lines.
	RowEmpty
)

// String returns the CSS-friendly name of the kind.
func (k RowKind) String() string {
	switch k {
	case RowEqual:
		return "equal"
	case RowAdded:
		return "added"
	case RowRemoved:
		return "removed"
	case RowChanged:
		return "changed"
	case RowEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// WrappedSegment is one physical display line cut from a logical line.
type WrappedSegment struct {
	LineNumber int         `json:"line_number"`
	Index      int         `json:"index"`
	Text       string      `json:"text"`
	Highlights []Highlight `json:"highlights,omitempty"`
}

// Cell is one logical line on one side of a row. It always holds at least one segment.
type Cell struct {
	LineNumber int              `json:"line_number"`
	Segments   []WrappedSegment `json:"segments"`
}

// Text reassembles the logical line from its segments.
func (c *Cell) Text() string {
	if c == nil {
		return ""
	}
	n := 0
	for _, s := range c.Segments {
		n += len(s.Text)
	}
	b := make([]byte, 0, n)
	for _, s := range c.Segments {
		b = append(b, s.Text...)
	}
	return string(b)
}

// Height returns the number of display lines the cell occupies.
func (c *Cell) Height() int {
	if c == nil {
		return 0
	}
	return len(c.Segments)
}

// AlignedRow pairs a left and right cell. A nil cell renders as empty.
type AlignedRow struct {
	Kind    RowKind `json:"kind"`
	Left    *Cell   `json:"left,omitempty"`
	Right   *Cell   `json:"right,omitempty"`
	Skipped int     `json:"skipped,omitempty"`
}

// Height returns the number of display lines the row occupies.
func (r AlignedRow) Height() int {
	return max(r.Left.Height(), r.Right.Height(), 1)
}
