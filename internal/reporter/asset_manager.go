package reporter

import (
	"embed"
	"fmt"
	"html/template"

	"github.com/rs/zerolog"
)

// AssetManager reads embedded stylesheets for inlining into pages
type AssetManager struct {
	logger zerolog.Logger
	fs     embed.FS
}

// NewAssetManager creates a new AssetManager over the embedded assets
func NewAssetManager(logger zerolog.Logger) *AssetManager {
	return &AssetManager{
		logger: logger,
		fs:     assetsFS,
	}
}

// EmbedAssetContent returns the embedded asset at path
func (am *AssetManager) EmbedAssetContent(path string) (string, error) {
	data, err := am.fs.ReadFile(path)
	if err != nil {
		am.logger.Error().Err(err).Str("asset", path).Msg("Failed to read embedded asset")
		return "", fmt.Errorf("failed to read embedded asset '%s': %w", path, err)
	}
	return string(data), nil
}

// StylesheetWithTabSize returns the stylesheet at path with a tab-size rule appended
func (am *AssetManager) StylesheetWithTabSize(path string, tabSize int) (template.CSS, error) {
	content, err := am.EmbedAssetContent(path)
	if err != nil {
		return "", err
	}
	if tabSize <= 0 {
		tabSize = DefaultTabSize
	}
	return template.CSS(content + fmt.Sprintf("pre{-moz-tab-size:%d;tab-size:%d}\n", tabSize, tabSize)), nil
}
