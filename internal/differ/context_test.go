package differ

import (
	"fmt"
	"testing"

	"github.com/aleister1102/irdiff/internal/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbered(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("line %d\n", i)
	}
	return out
}

func rowKinds(rows []models.AlignedRow) []models.RowKind {
	out := make([]models.RowKind, len(rows))
	for i, r := range rows {
		out[i] = r.Kind
	}
	return out
}

func TestContextGrouper_SingleChange(t *testing.T) {
	left := numbered(20)
	right := numbered(20)
	right[9] = "changed\n"

	ops := DiffLines(left, right)
	groups := NewContextGrouper(3).Group(ops)
	require.Len(t, groups, 1)

	want := []models.Operation{
		{Kind: models.OpEqual, LeftStart: 6, LeftEnd: 9, RightStart: 6, RightEnd: 9},
		{Kind: models.OpReplace, LeftStart: 9, LeftEnd: 10, RightStart: 9, RightEnd: 10},
		{Kind: models.OpEqual, LeftStart: 10, LeftEnd: 13, RightStart: 10, RightEnd: 13},
	}
	if diff := cmp.Diff(want, groups[0]); diff != "" {
		t.Errorf("group mismatch (-want +got):\n%s", diff)
	}

	rows := newTestAligner(0).AlignGroups(groups, models.NewDocument("l", left), models.NewDocument("r", right))
	require.Len(t, rows, 9)
	assert.Equal(t, models.RowEmpty, rows[0].Kind)
	assert.Equal(t, 6, rows[0].Skipped)
	assert.Nil(t, rows[0].Left)
	assert.Nil(t, rows[0].Right)
	assert.Equal(t, 7, rows[1].Left.LineNumber)
	assert.Equal(t, models.RowEmpty, rows[8].Kind)
	assert.Equal(t, 7, rows[8].Skipped)
}

func TestContextGrouper_TwoHunks(t *testing.T) {
	left := numbered(20)
	right := numbered(20)
	right[2] = "first\n"
	right[17] = "second\n"

	groups := NewContextGrouper(2).Group(DiffLines(left, right))
	require.Len(t, groups, 2)

	rows := newTestAligner(0).AlignGroups(groups, models.NewDocument("l", left), models.NewDocument("r", right))
	assert.Equal(t, []models.RowKind{
		models.RowEqual, models.RowEqual, models.RowChanged, models.RowEqual, models.RowEqual,
		models.RowEmpty,
		models.RowEqual, models.RowEqual, models.RowChanged, models.RowEqual, models.RowEqual,
	}, rowKinds(rows))
	assert.Equal(t, 10, rows[5].Skipped)
}

func TestContextGrouper_NearbyChangesMerge(t *testing.T) {
	left := numbered(12)
	right := numbered(12)
	right[3] = "a\n"
	right[7] = "b\n"

	groups := NewContextGrouper(2).Group(DiffLines(left, right))
	assert.Len(t, groups, 1)
}

func TestContextGrouper_NoChanges(t *testing.T) {
	doc := numbered(10)
	groups := NewContextGrouper(5).Group(DiffLines(doc, doc))

	assert.Empty(t, groups)
	assert.Empty(t, newTestAligner(0).AlignGroups(groups, models.NewDocument("l", doc), models.NewDocument("r", doc)))
}

func TestContextGrouper_ZeroContext(t *testing.T) {
	left := numbered(10)
	right := numbered(10)
	right[5] = "x\n"

	groups := NewContextGrouper(0).Group(DiffLines(left, right))
	rows := newTestAligner(0).AlignGroups(groups, models.NewDocument("l", left), models.NewDocument("r", right))

	assert.Equal(t, []models.RowKind{models.RowEmpty, models.RowChanged, models.RowEmpty}, rowKinds(rows))
	assert.Equal(t, 5, rows[0].Skipped)
	assert.Equal(t, 4, rows[2].Skipped)
}
