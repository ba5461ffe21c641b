package reporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// DirectoryManager manages creating directories for reports
type DirectoryManager struct {
	logger zerolog.Logger
}

// NewDirectoryManager creates a new DirectoryManager
func NewDirectoryManager(logger zerolog.Logger) *DirectoryManager {
	return &DirectoryManager{
		logger: logger,
	}
}

// EnsureOutputDirectories ensures the output directory exists; empty means the working directory
func (dm *DirectoryManager) EnsureOutputDirectories(outputDir string) error {
	if outputDir == "" || outputDir == "." {
		return nil
	}
	if err := dm.createDirectory(outputDir); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", outputDir, err)
	}
	return nil
}

// EnsureParentDirectory ensures the directory holding filePath exists
func (dm *DirectoryManager) EnsureParentDirectory(filePath string) error {
	return dm.EnsureOutputDirectories(filepath.Dir(filePath))
}

func (dm *DirectoryManager) createDirectory(path string) error {
	if err := os.MkdirAll(path, DirPermissions); err != nil {
		dm.logger.Error().Err(err).Str("path", path).Msg("Failed to create directory")
		return err
	}

	dm.logger.Debug().Str("path", path).Msg("Directory ensured")
	return nil
}
