package file

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/aleister1102/irdiff/internal/common/errorwrapper"
	"github.com/aleister1102/irdiff/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/charmap"
)

// SourceLoader reads input files into Documents
type SourceLoader struct {
	logger    zerolog.Logger
	validator *FileValidator
	opts      FileReadOptions
}

// NewSourceLoader creates a new SourceLoader instance
func NewSourceLoader(logger zerolog.Logger, opts FileReadOptions) *SourceLoader {
	componentLogger := logger.With().Str("component", "SourceLoader").Logger()
	return &SourceLoader{
		logger:    componentLogger,
		validator: NewFileValidator(componentLogger),
		opts:      opts,
	}
}

// Load reads path into a Document labelled with label.
// Content that is not valid UTF-8 is decoded as ISO-8859-1 so every byte survives.
func (sl *SourceLoader) Load(path, label string) (*models.Document, error) {
	if _, err := sl.validator.ValidateFileForReading(path, sl.opts); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errorwrapper.WrapError(err, fmt.Sprintf("failed to read file: %s", path))
	}

	text, encoding := decode(data)
	if encoding != models.EncodingUTF8 {
		sl.logger.Debug().Str("path", path).Str("encoding", encoding).Msg("Input is not valid UTF-8, using fallback decoding")
	}

	return &models.Document{
		Path:     path,
		Label:    label,
		Encoding: encoding,
		Lines:    models.SplitLines(text),
	}, nil
}

// decode returns data as text, falling back to ISO-8859-1 for invalid UTF-8.
func decode(data []byte) (string, string) {
	if utf8.Valid(data) {
		return string(data), models.EncodingUTF8
	}
	// ISO-8859-1 maps every byte to a code point, so decoding cannot fail.
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return string(data), models.EncodingUTF8
	}
	return string(decoded), models.EncodingISO8859_1
}
