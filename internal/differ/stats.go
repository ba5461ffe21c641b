package differ

import (
	"github.com/aleister1102/irdiff/internal/models"
)

// DiffStatsCalculator derives line statistics from an edit script
type DiffStatsCalculator struct{}

// NewDiffStatsCalculator creates a new diff stats calculator
func NewDiffStatsCalculator() *DiffStatsCalculator {
	return &DiffStatsCalculator{}
}

// CalculateStats counts lines per row kind. Replace blocks count their
// positional pairs as changed and the excess as removed or added.
func (dsc *DiffStatsCalculator) CalculateStats(ops []models.Operation, similarity float64) models.Stats {
	stats := models.Stats{Similarity: similarity}

	for _, op := range ops {
		switch op.Kind {
		case models.OpEqual:
			stats.Unchanged += op.LeftLen()
		case models.OpInsert:
			stats.Added += op.RightLen()
		case models.OpDelete:
			stats.Removed += op.LeftLen()
		case models.OpReplace:
			paired := min(op.LeftLen(), op.RightLen())
			stats.Changed += paired
			stats.Removed += op.LeftLen() - paired
			stats.Added += op.RightLen() - paired
		}
	}

	stats.Identical = !hasChanges(ops)
	return stats
}
