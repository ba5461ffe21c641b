package reporter

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

var (
	unsafeFilenameCharsRegex = regexp.MustCompile(`[^a-zA-Z0-9_.\-]+`)
	multipleUnderscoresRegex = regexp.MustCompile(`_+`)
)

// PathBuilder derives output file locations from an output directory.
// Names it hands out are unique: an input name that sanitizes to a page name
// already issued by this builder gets a numeric suffix (_2, _3, ...).
type PathBuilder struct {
	outputDir string

	mu   sync.Mutex
	used map[string]struct{}
}

// NewPathBuilder creates a path builder; an empty outputDir means the working directory
func NewPathBuilder(outputDir string) *PathBuilder {
	return &PathBuilder{
		outputDir: outputDir,
		used:      make(map[string]struct{}),
	}
}

// OutputDir returns the configured output directory
func (pb *PathBuilder) OutputDir() string {
	return pb.outputDir
}

// PairReportPath returns comparison_<name1>_vs_<name2>.html inside the output directory
func (pb *PathBuilder) PairReportPath(name1, name2 string) string {
	return pb.join(pb.claim(ComparisonFilePrefix + SanitizeFilename(name1) + "_vs_" + SanitizeFilename(name2)))
}

// BasenameReportPath returns comparison_<basename>.html inside the output directory
func (pb *PathBuilder) BasenameReportPath(basename string) string {
	return pb.join(pb.claim(ComparisonFilePrefix + SanitizeFilename(basename)))
}

// claim reserves stem+".html", or the first free stem_N+".html".
// Names are compared case-insensitively since the output directory may live
// on a case-insensitive filesystem.
func (pb *PathBuilder) claim(stem string) string {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	name := stem + ReportFileExtension
	for n := 2; ; n++ {
		key := strings.ToLower(name)
		if _, taken := pb.used[key]; !taken {
			pb.used[key] = struct{}{}
			return name
		}
		name = stem + "_" + strconv.Itoa(n) + ReportFileExtension
	}
}

// IndexPath returns index.html inside the output directory, or the standalone
// index name in the working directory when no directory was given
func (pb *PathBuilder) IndexPath() string {
	if pb.outputDir == "" {
		return StandaloneIndexName
	}
	return filepath.Join(pb.outputDir, IndexFileName)
}

// PatchPath returns the sidecar patch path for a report path
func PatchPath(reportPath string) string {
	return strings.TrimSuffix(reportPath, ReportFileExtension) + PatchFileExtension
}

func (pb *PathBuilder) join(name string) string {
	if pb.outputDir == "" {
		return name
	}
	return filepath.Join(pb.outputDir, name)
}

// SanitizeFilename keeps letters, digits, underscore, dot and hyphen, folding
// everything else into single underscores
func SanitizeFilename(input string) string {
	name := unsafeFilenameCharsRegex.ReplaceAllString(input, "_")
	name = multipleUnderscoresRegex.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")
	if name == "" || name == "." || name == ".." {
		return SanitizedEmptyFilename
	}
	return name
}
