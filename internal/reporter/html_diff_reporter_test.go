package reporter

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/aleister1102/irdiff/internal/common/errorwrapper"
	"github.com/aleister1102/irdiff/internal/config"
	"github.com/aleister1102/irdiff/internal/differ"
	"github.com/aleister1102/irdiff/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiffReporter(t *testing.T, cfg config.ReporterConfig) *HtmlDiffReporter {
	t.Helper()
	r, err := NewHtmlDiffReporter(zerolog.Nop(), cfg)
	require.NoError(t, err)
	return r
}

func compare(t *testing.T, diffCfg config.DiffConfig, left, right string) *models.Comparison {
	t.Helper()
	cd, err := differ.NewContentDiffer(zerolog.Nop(), diffCfg)
	require.NoError(t, err)
	cmp, err := cd.Compare(
		models.NewDocument("before.ttir", models.SplitLines(left)),
		models.NewDocument("after.ttir", models.SplitLines(right)),
	)
	require.NoError(t, err)
	return cmp
}

func renderDoc(t *testing.T, r *HtmlDiffReporter, cmp *models.Comparison) (string, *goquery.Document) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, cmp))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return buf.String(), doc
}

func TestHtmlDiffReporter_RenderStructure(t *testing.T) {
	r := newTestDiffReporter(t, config.NewDefaultReporterConfig())
	cmp := compare(t, config.NewDefaultDiffConfig(),
		"func @main() {\n  %0 = arith.constant 1 : i32\n  return\n}\n",
		"func @main() {\n  %0 = arith.constant 2 : i32\n  return\n}\n  // trailing\n",
	)

	_, doc := renderDoc(t, r, cmp)

	assert.Equal(t, "before.ttir vs after.ttir", doc.Find("title").Text())
	assert.Equal(t, "before.ttir", doc.Find("h1 .label-left").Text())
	assert.Equal(t, "after.ttir", doc.Find("h1 .label-right").Text())

	rows := doc.Find("table.diff tbody tr.row")
	require.Equal(t, len(cmp.Rows), rows.Length())

	var kinds []string
	rows.Each(func(_ int, s *goquery.Selection) {
		for _, k := range []string{"equal", "added", "removed", "changed", "empty"} {
			if s.HasClass("row-" + k) {
				kinds = append(kinds, k)
			}
		}
	})
	assert.Equal(t, []string{"equal", "changed", "equal", "equal", "added"}, kinds)

	changed := rows.Eq(1)
	assert.Equal(t, "2", changed.Find("td.ln").First().Text())
	assert.Equal(t, "1", changed.Find("span.hl-removed").Text())
	assert.Equal(t, "2", changed.Find("span.hl-added").Text())

	added := rows.Eq(4)
	assert.Equal(t, 1, added.Find("td.code.empty").Length())
	assert.Equal(t, "5", added.Find("td.ln").Last().Text())
	assert.Equal(t, "  // trailing", added.Find("td.code pre").Last().Text())

	var stats models.Stats
	require.NoError(t, json.Unmarshal([]byte(doc.Find("script#comparison-stats").Text()), &stats))
	assert.Equal(t, cmp.Stats, stats)
	assert.Contains(t, doc.Find("p.description").Text(), "1 added, 0 removed, 1 changed, 3 unchanged.")
}

func TestHtmlDiffReporter_Deterministic(t *testing.T) {
	r := newTestDiffReporter(t, config.NewDefaultReporterConfig())
	cmp := compare(t, config.NewDefaultDiffConfig(), "a\nb\nc\n", "a\nB\nc\nd\n")

	first, _ := renderDoc(t, r, cmp)
	second, _ := renderDoc(t, r, cmp)
	assert.Equal(t, first, second)

	other := newTestDiffReporter(t, config.NewDefaultReporterConfig())
	third, _ := renderDoc(t, other, cmp)
	assert.Equal(t, first, third)
}

func TestHtmlDiffReporter_EscapesContent(t *testing.T) {
	r := newTestDiffReporter(t, config.NewDefaultReporterConfig())
	cmp := compare(t, config.NewDefaultDiffConfig(),
		"%0 = \"tt.load\"(<tensor>) & x\n",
		"%0 = \"tt.load\"(<tensor>) & y\n<script>alert(1)</script>\n",
	)

	page, doc := renderDoc(t, r, cmp)

	assert.NotContains(t, page, "<tensor>")
	assert.NotContains(t, page, "<script>alert(1)</script>")
	assert.Contains(t, page, "&lt;tensor&gt;")
	assert.Equal(t, "<script>alert(1)</script>", doc.Find("tr.row-added td.code pre").Last().Text())
}

func TestHtmlDiffReporter_ContextOnly(t *testing.T) {
	var left, right strings.Builder
	for i := range 30 {
		line := "line " + string(rune('a'+i%26)) + "\n"
		left.WriteString(line)
		if i == 15 {
			line = "changed\n"
		}
		right.WriteString(line)
	}

	diffCfg := config.NewDefaultDiffConfig()
	diffCfg.ContextOnly = true
	diffCfg.ContextLines = 2
	cmp := compare(t, diffCfg, left.String(), right.String())

	r := newTestDiffReporter(t, config.NewDefaultReporterConfig())
	_, doc := renderDoc(t, r, cmp)

	empty := doc.Find("tr.row-empty")
	require.Equal(t, 2, empty.Length())
	assert.Equal(t, "13 unchanged lines hidden", strings.TrimSpace(empty.First().Text()))
	assert.Equal(t, "12 unchanged lines hidden", strings.TrimSpace(empty.Last().Text()))
	assert.Contains(t, doc.Find("p.description").Text(), "Showing changed regions only.")
}

func TestHtmlDiffReporter_WrappedSegments(t *testing.T) {
	diffCfg := config.NewDefaultDiffConfig()
	diffCfg.WrapWidth = 4
	cmp := compare(t, diffCfg, "abcdefghij\n", "abcdefghij\n")

	r := newTestDiffReporter(t, config.NewDefaultReporterConfig())
	_, doc := renderDoc(t, r, cmp)

	segs := doc.Find("tr.row-equal td.code").First().Find("span.seg")
	require.Equal(t, 3, segs.Length())
	assert.Equal(t, "abcd", segs.Eq(0).Text())
	assert.Equal(t, "efgh", segs.Eq(1).Text())
	assert.Equal(t, "ij", segs.Eq(2).Text())
}

func TestHtmlDiffReporter_Minify(t *testing.T) {
	cmp := compare(t, config.NewDefaultDiffConfig(), "a\n  indented  line\n", "a\n  indented  line!\n")

	plain, plainDoc := renderDoc(t, newTestDiffReporter(t, config.NewDefaultReporterConfig()), cmp)

	cfg := config.NewDefaultReporterConfig()
	cfg.Minify = true
	minified, minDoc := renderDoc(t, newTestDiffReporter(t, cfg), cmp)

	assert.Less(t, len(minified), len(plain))
	assert.Equal(t, plainDoc.Find("tr.row").Length(), minDoc.Find("tr.row").Length())
	assert.Equal(t,
		plainDoc.Find("tr.row-changed td.code pre").First().Text(),
		minDoc.Find("tr.row-changed td.code pre").First().Text(),
	)
	assert.Equal(t, "  indented  line", minDoc.Find("tr.row-changed td.code pre").First().Text())
}

func TestHtmlDiffReporter_TabSize(t *testing.T) {
	cfg := config.NewDefaultReporterConfig()
	cfg.TabSize = 8
	cmp := compare(t, config.NewDefaultDiffConfig(), "a\n", "b\n")

	page, _ := renderDoc(t, newTestDiffReporter(t, cfg), cmp)
	assert.Contains(t, page, "tab-size:8")
}

func TestHtmlDiffReporter_WriteComparison(t *testing.T) {
	r := newTestDiffReporter(t, config.NewDefaultReporterConfig())
	cmp := compare(t, config.NewDefaultDiffConfig(), "a\n", "a\n")

	out := filepath.Join(t.TempDir(), "nested", "comparison_a_vs_b.html")
	path, err := r.WriteComparison(cmp, out)
	require.NoError(t, err)
	assert.Equal(t, out, path)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "No textual changes detected.")
	assert.Contains(t, string(data), "100.0% similar")
}

func TestHtmlDiffReporter_NilComparison(t *testing.T) {
	r := newTestDiffReporter(t, config.NewDefaultReporterConfig())

	err := r.Render(&bytes.Buffer{}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errorwrapper.ErrInvalidInput))

	_, err = r.WriteComparison(nil, filepath.Join(t.TempDir(), "x.html"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errorwrapper.ErrInvalidInput))
}

func TestDiffUtils_GenerateSegmentHTML(t *testing.T) {
	du := NewDiffUtils()

	tests := []struct {
		name string
		seg  models.WrappedSegment
		want string
	}{
		{
			name: "plain text drops terminator",
			seg:  models.WrappedSegment{Text: "abc\n"},
			want: "abc",
		},
		{
			name: "added range",
			seg: models.WrappedSegment{Text: "abcd\n", Highlights: []models.Highlight{
				{Start: 0, End: 1, Tag: models.HighlightUnchanged},
				{Start: 1, End: 3, Tag: models.HighlightAdded},
				{Start: 3, End: 5, Tag: models.HighlightUnchanged},
			}},
			want: `a<span class="hl-added">bc</span>d`,
		},
		{
			name: "removed range clipped at terminator",
			seg: models.WrappedSegment{Text: "ab\r\n", Highlights: []models.Highlight{
				{Start: 0, End: 4, Tag: models.HighlightRemoved},
			}},
			want: `<span class="hl-removed">ab</span>`,
		},
		{
			name: "escapes inside highlight",
			seg: models.WrappedSegment{Text: "<a>&", Highlights: []models.Highlight{
				{Start: 1, End: 2, Tag: models.HighlightAdded},
			}},
			want: `&lt;<span class="hl-added">a</span>&gt;&amp;`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(du.GenerateSegmentHTML(tt.seg)))
		})
	}
}

func TestDiffUtils_CreateDiffSummary(t *testing.T) {
	du := NewDiffUtils()
	assert.Equal(t, "No textual changes detected.", du.CreateDiffSummary(models.Stats{Identical: true, Unchanged: 3, Similarity: 1}))
	assert.Equal(t, "1 added, 2 removed, 3 changed, 4 unchanged.", du.CreateDiffSummary(models.Stats{Added: 1, Removed: 2, Changed: 3, Unchanged: 4}))
}
