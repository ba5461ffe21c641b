package file

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aleister1102/irdiff/internal/common/errorwrapper"
)

// DefaultIRExtensions lists the file extensions treated as IR dumps.
var DefaultIRExtensions = []string{".llir", ".ptx", ".ttgir", ".ttir"}

// ListIRFiles returns the regular files directly inside dir whose extension is
// in extensions, sorted by name. Symlinks are followed; subdirectories and
// dangling links are skipped.
func ListIRFiles(dir string, extensions []string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errorwrapper.NewNotFoundError(dir, err)
		}
		return nil, errorwrapper.WrapError(err, "failed to list directory: "+dir)
	}

	var files []string
	for _, entry := range entries {
		if !HasExtension(entry.Name(), extensions) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !isRegularFile(path, entry) {
			continue
		}
		files = append(files, path)
	}
	slices.Sort(files)
	return files, nil
}

// HasExtension reports whether name ends in one of extensions, ignoring case.
func HasExtension(name string, extensions []string) bool {
	ext := filepath.Ext(name)
	return slices.ContainsFunc(extensions, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

func isRegularFile(path string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.Type().IsRegular()
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
