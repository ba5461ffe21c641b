package differ

import (
	"github.com/aleister1102/irdiff/internal/models"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// PatchExporter renders a line-mode diff-match-patch patch for a document
// pair, written next to the HTML page when requested.
type PatchExporter struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewPatchExporter creates a new patch exporter
func NewPatchExporter() *PatchExporter {
	return &PatchExporter{
		dmp: diffmatchpatch.New(),
	}
}

// Export returns the textual patch turning left into right.
func (pe *PatchExporter) Export(left, right *models.Document) string {
	text1, text2 := left.Text(), right.Text()

	chars1, chars2, lines := pe.dmp.DiffLinesToChars(text1, text2)
	diffs := pe.dmp.DiffMain(chars1, chars2, false)
	diffs = pe.dmp.DiffCharsToLines(diffs, lines)

	patches := pe.dmp.PatchMake(text1, diffs)
	return pe.dmp.PatchToText(patches)
}
