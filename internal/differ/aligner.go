package differ

import (
	"github.com/aleister1102/irdiff/internal/models"
)

// Aligner turns an edit script into side-by-side rows, one row per logical
// line pair. Replace blocks pair lines by position.
type Aligner struct {
	refiner *IntralineRefiner
	wrapper *LineWrapper
}

// NewAligner creates an aligner using refiner for changed pairs and wrapper for every cell.
func NewAligner(refiner *IntralineRefiner, wrapper *LineWrapper) *Aligner {
	return &Aligner{refiner: refiner, wrapper: wrapper}
}

// Align produces the rows for ops over left and right.
func (a *Aligner) Align(ops []models.Operation, left, right *models.Document) []models.AlignedRow {
	rows := make([]models.AlignedRow, 0, rowCount(ops))
	for _, op := range ops {
		rows = a.appendOperation(rows, op, left, right)
	}
	return rows
}

// AlignGroups aligns context hunks, inserting a RowEmpty wherever unchanged
// lines were left out. No groups means no rows.
func (a *Aligner) AlignGroups(groups [][]models.Operation, left, right *models.Document) []models.AlignedRow {
	var rows []models.AlignedRow
	next := 0
	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		if start := group[0].LeftStart; start > next {
			rows = append(rows, models.AlignedRow{Kind: models.RowEmpty, Skipped: start - next})
		}
		for _, op := range group {
			rows = a.appendOperation(rows, op, left, right)
		}
		next = group[len(group)-1].LeftEnd
	}
	if len(rows) > 0 && next < left.Len() {
		rows = append(rows, models.AlignedRow{Kind: models.RowEmpty, Skipped: left.Len() - next})
	}
	return rows
}

func (a *Aligner) appendOperation(rows []models.AlignedRow, op models.Operation, left, right *models.Document) []models.AlignedRow {
	switch op.Kind {
	case models.OpEqual:
		for k := 0; k < op.LeftLen(); k++ {
			i, j := op.LeftStart+k, op.RightStart+k
			rows = append(rows, models.AlignedRow{
				Kind:  models.RowEqual,
				Left:  a.cell(i, left.Line(i), models.HighlightUnchanged),
				Right: a.cell(j, right.Line(j), models.HighlightUnchanged),
			})
		}
	case models.OpDelete:
		rows = a.appendRemoved(rows, op.LeftStart, op.LeftEnd, left)
	case models.OpInsert:
		rows = a.appendAdded(rows, op.RightStart, op.RightEnd, right)
	case models.OpReplace:
		paired := min(op.LeftLen(), op.RightLen())
		for k := 0; k < paired; k++ {
			rows = append(rows, a.changedRow(op.LeftStart+k, op.RightStart+k, left, right))
		}
		rows = a.appendRemoved(rows, op.LeftStart+paired, op.LeftEnd, left)
		rows = a.appendAdded(rows, op.RightStart+paired, op.RightEnd, right)
	}
	return rows
}

func (a *Aligner) appendRemoved(rows []models.AlignedRow, from, to int, doc *models.Document) []models.AlignedRow {
	for i := from; i < to; i++ {
		rows = append(rows, models.AlignedRow{Kind: models.RowRemoved, Left: a.cell(i, doc.Line(i), models.HighlightRemoved)})
	}
	return rows
}

func (a *Aligner) appendAdded(rows []models.AlignedRow, from, to int, doc *models.Document) []models.AlignedRow {
	for j := from; j < to; j++ {
		rows = append(rows, models.AlignedRow{Kind: models.RowAdded, Right: a.cell(j, doc.Line(j), models.HighlightAdded)})
	}
	return rows
}

// changedRow refines the pair on content only; terminators count as unchanged.
func (a *Aligner) changedRow(i, j int, left, right *models.Document) models.AlignedRow {
	lline, rline := left.Line(i), right.Line(j)
	lcontent, _ := models.SplitTerminator(lline)
	rcontent, _ := models.SplitTerminator(rline)

	lh, rh := a.refiner.Refine(lcontent, rcontent)
	lh = models.AppendHighlight(lh, models.Highlight{Start: len(lcontent), End: len(lline), Tag: models.HighlightUnchanged})
	rh = models.AppendHighlight(rh, models.Highlight{Start: len(rcontent), End: len(rline), Tag: models.HighlightUnchanged})

	return models.AlignedRow{
		Kind:  models.RowChanged,
		Left:  a.wrapCell(i, lline, lh),
		Right: a.wrapCell(j, rline, rh),
	}
}

func (a *Aligner) cell(index int, line string, tag models.HighlightTag) *models.Cell {
	return a.wrapCell(index, line, models.WholeLine(line, tag))
}

func (a *Aligner) wrapCell(index int, line string, hs []models.Highlight) *models.Cell {
	lineNumber := index + 1
	return &models.Cell{
		LineNumber: lineNumber,
		Segments:   a.wrapper.Wrap(lineNumber, line, hs),
	}
}

// rowCount is the number of rows Align emits for ops.
func rowCount(ops []models.Operation) int {
	n := 0
	for _, op := range ops {
		n += max(op.LeftLen(), op.RightLen())
	}
	return n
}
