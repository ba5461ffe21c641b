package models

import "fmt"

// OpKind tags an edit script operation.
type OpKind int

const (
	OpEqual OpKind = iota
	OpInsert
	OpDelete
	OpReplace
)

// String returns the lower-case name of the kind.
func (k OpKind) String() string {
	switch k {
	case OpEqual:
		return "equal"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Operation is one step of an edit script over zero-based, half-open
// line ranges [LeftStart, LeftEnd) and [RightStart, RightEnd).
type Operation struct {
	Kind       OpKind `json:"kind"`
	LeftStart  int    `json:"left_start"`
	LeftEnd    int    `json:"left_end"`
	RightStart int    `json:"right_start"`
	RightEnd   int    `json:"right_end"`
}

// LeftLen returns the number of left lines covered.
func (o Operation) LeftLen() int { return o.LeftEnd - o.LeftStart }

// RightLen returns the number of right lines covered.
func (o Operation) RightLen() int { return o.RightEnd - o.RightStart }

func (o Operation) String() string {
	return fmt.Sprintf("%s [%d,%d)/[%d,%d)", o.Kind, o.LeftStart, o.LeftEnd, o.RightStart, o.RightEnd)
}
