package differ

import (
	"fmt"

	"github.com/aleister1102/irdiff/internal/common/errorwrapper"
	"github.com/aleister1102/irdiff/internal/config"
	"github.com/aleister1102/irdiff/internal/models"
)

// ContentSizeValidator validates document size against limits
type ContentSizeValidator struct {
	maxSizeBytes int64
}

// NewContentSizeValidator creates a new content size validator; 0 disables the check
func NewContentSizeValidator(maxSizeBytes int64) *ContentSizeValidator {
	return &ContentSizeValidator{
		maxSizeBytes: maxSizeBytes,
	}
}

// ValidateSize checks if both documents are within limits
func (csv *ContentSizeValidator) ValidateSize(left, right *models.Document) error {
	if err := csv.validateSingleDocument(left, "left_content"); err != nil {
		return err
	}
	return csv.validateSingleDocument(right, "right_content")
}

func (csv *ContentSizeValidator) validateSingleDocument(doc *models.Document, fieldName string) error {
	if csv.maxSizeBytes <= 0 {
		return nil
	}
	size := int64(0)
	for _, line := range doc.Lines {
		size += int64(len(line))
	}
	if size > csv.maxSizeBytes {
		return errorwrapper.NewValidationError(fieldName, size,
			fmt.Sprintf("%s too large (%d bytes > %d bytes limit)", fieldName, size, csv.maxSizeBytes))
	}
	return nil
}

// InputValidator validates comparison inputs
type InputValidator struct{}

// NewInputValidator creates a new input validator
func NewInputValidator() *InputValidator {
	return &InputValidator{}
}

// ValidateInputs rejects missing documents
func (iv *InputValidator) ValidateInputs(left, right *models.Document) error {
	if left == nil {
		return errorwrapper.NewValidationError("left", nil, "document cannot be nil")
	}
	if right == nil {
		return errorwrapper.NewValidationError("right", nil, "document cannot be nil")
	}
	return nil
}

// ValidateDiffConfig checks the pipeline tunables
func ValidateDiffConfig(cfg config.DiffConfig) error {
	if cfg.WrapWidth < 0 {
		return errorwrapper.NewValidationError("wrap_width", cfg.WrapWidth, "must not be negative")
	}
	if cfg.SimilarityThreshold < 0 || cfg.SimilarityThreshold > 1 {
		return errorwrapper.NewValidationError("similarity_threshold", cfg.SimilarityThreshold, "must be between 0 and 1")
	}
	if cfg.ContextLines < 0 {
		return errorwrapper.NewValidationError("context_lines", cfg.ContextLines, "must not be negative")
	}
	return nil
}
