package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aleister1102/irdiff/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// FileWriter handles file writing operations
type FileWriter struct {
	logger zerolog.Logger
}

// NewFileWriter creates a new FileWriter instance
func NewFileWriter(logger zerolog.Logger) *FileWriter {
	return &FileWriter{
		logger: logger.With().Str("component", "FileWriter").Logger(),
	}
}

// WriteFile writes data to path with the given options
func (fw *FileWriter) WriteFile(path string, data []byte, opts FileWriteOptions) error {
	if opts.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errorwrapper.WrapError(err, fmt.Sprintf("failed to create parent directory for: %s", path))
		}
	}

	if err := os.WriteFile(path, data, opts.Permissions); err != nil {
		return errorwrapper.WrapError(err, fmt.Sprintf("failed to write file: %s", path))
	}

	fw.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("File written successfully")
	return nil
}
