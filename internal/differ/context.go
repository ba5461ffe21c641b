package differ

import (
	"github.com/aleister1102/irdiff/internal/models"
)

// DefaultContextLines is the number of unchanged lines kept around each change.
const DefaultContextLines = 5

// ContextGrouper splits an edit script into hunks that keep n unchanged lines
// around every change.
type ContextGrouper struct {
	n int
}

// NewContextGrouper creates a grouper; negative n is treated as zero.
func NewContextGrouper(n int) *ContextGrouper {
	return &ContextGrouper{n: max(n, 0)}
}

// Group returns the hunks of ops. An edit script without changes yields none.
func (g *ContextGrouper) Group(ops []models.Operation) [][]models.Operation {
	if !hasChanges(ops) {
		return nil
	}

	codes := make([]models.Operation, len(ops))
	copy(codes, ops)

	n := g.n
	if first := &codes[0]; first.Kind == models.OpEqual {
		first.LeftStart = max(first.LeftStart, first.LeftEnd-n)
		first.RightStart = max(first.RightStart, first.RightEnd-n)
	}
	if last := &codes[len(codes)-1]; last.Kind == models.OpEqual {
		last.LeftEnd = min(last.LeftEnd, last.LeftStart+n)
		last.RightEnd = min(last.RightEnd, last.RightStart+n)
	}

	var groups [][]models.Operation
	var group []models.Operation
	for _, op := range codes {
		// An unchanged run longer than two contexts closes the current hunk.
		if op.Kind == models.OpEqual && op.LeftLen() > 2*n {
			group = append(group, models.Operation{
				Kind:       models.OpEqual,
				LeftStart:  op.LeftStart,
				LeftEnd:    min(op.LeftEnd, op.LeftStart+n),
				RightStart: op.RightStart,
				RightEnd:   min(op.RightEnd, op.RightStart+n),
			})
			groups = append(groups, group)
			group = nil
			op.LeftStart = max(op.LeftStart, op.LeftEnd-n)
			op.RightStart = max(op.RightStart, op.RightEnd-n)
		}
		group = append(group, op)
	}
	if len(group) > 0 && !(len(group) == 1 && group[0].Kind == models.OpEqual) {
		groups = append(groups, group)
	}
	return groups
}

func hasChanges(ops []models.Operation) bool {
	for _, op := range ops {
		if op.Kind != models.OpEqual {
			return true
		}
	}
	return false
}
