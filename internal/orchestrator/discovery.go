package orchestrator

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/aleister1102/irdiff/internal/common/file"
	"github.com/aleister1102/irdiff/internal/reporter"
)

// Pair is one unit of batch work: two input files, their display labels and
// the page the comparison is written to.
type Pair struct {
	LeftPath   string
	RightPath  string
	Label1     string
	Label2     string
	OutputPath string
}

// MatchDirectories pairs files that exist under the same basename in both
// directories. Labels are "<dirname>/<basename>"; output pages are named
// after the basename. The result is sorted by basename.
func MatchDirectories(dir1, dir2 string, extensions []string, pb *reporter.PathBuilder) ([]Pair, error) {
	files1, err := file.ListIRFiles(dir1, extensions)
	if err != nil {
		return nil, err
	}
	files2, err := file.ListIRFiles(dir2, extensions)
	if err != nil {
		return nil, err
	}

	right := make(map[string]string, len(files2))
	for _, p := range files2 {
		right[filepath.Base(p)] = p
	}

	name1, name2 := dirLabel(dir1), dirLabel(dir2)
	var pairs []Pair
	for _, leftPath := range files1 {
		base := filepath.Base(leftPath)
		rightPath, ok := right[base]
		if !ok {
			continue
		}
		pairs = append(pairs, Pair{
			LeftPath:   leftPath,
			RightPath:  rightPath,
			Label1:     name1 + "/" + base,
			Label2:     name2 + "/" + base,
			OutputPath: pb.BasenameReportPath(base),
		})
	}
	return pairs, nil
}

// SameExtensionPairs pairs every two files in dir that share an extension.
// Extensions are visited in sorted order, files within one in name order.
func SameExtensionPairs(dir string, extensions []string, pb *reporter.PathBuilder) ([]Pair, error) {
	files, err := file.ListIRFiles(dir, extensions)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]string)
	for _, p := range files {
		ext := strings.ToLower(filepath.Ext(p))
		groups[ext] = append(groups[ext], p)
	}

	exts := make([]string, 0, len(groups))
	for ext := range groups {
		exts = append(exts, ext)
	}
	slices.Sort(exts)

	var pairs []Pair
	for _, ext := range exts {
		group := groups[ext]
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				name1, name2 := filepath.Base(group[i]), filepath.Base(group[j])
				pairs = append(pairs, Pair{
					LeftPath:   group[i],
					RightPath:  group[j],
					Label1:     name1,
					Label2:     name2,
					OutputPath: pb.PairReportPath(name1, name2),
				})
			}
		}
	}
	return pairs, nil
}

// dirLabel is the last path element of dir, resolved against the working
// directory so that "." and trailing separators still give a name.
func dirLabel(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		return filepath.Base(abs)
	}
	return filepath.Base(filepath.Clean(dir))
}
