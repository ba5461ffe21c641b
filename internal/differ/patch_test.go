package differ

import (
	"testing"

	"github.com/aleister1102/irdiff/internal/models"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchExporter_AppliesCleanly(t *testing.T) {
	left := models.NewDocument("a.ptx", lines(".version 8.0", ".target sm_90", "mov.u32 %r1, %tid.x;", "ret;"))
	right := models.NewDocument("b.ptx", lines(".version 8.0", ".target sm_90a", "mov.u32 %r1, %tid.x;", "add.s32 %r2, %r1, 1;", "ret;"))

	text := NewPatchExporter().Export(left, right)
	require.NotEmpty(t, text)
	assert.Contains(t, text, "@@")

	dmp := diffmatchpatch.New()
	patches, err := dmp.PatchFromText(text)
	require.NoError(t, err)

	out, applied := dmp.PatchApply(patches, left.Text())
	for _, ok := range applied {
		assert.True(t, ok)
	}
	assert.Equal(t, right.Text(), out)
}

func TestPatchExporter_IdenticalInputs(t *testing.T) {
	doc := models.NewDocument("a", lines("x", "y"))
	assert.Empty(t, NewPatchExporter().Export(doc, doc))
}
