package application

import (
	"fmt"
	"strings"

	"vaultdiff/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateSpecIndex checks that a comparison spec index is within the
// fixed range of numbered slots.
func ValidateSpecIndex(index int) error {
	if index < 0 || index >= domain.SpecCount {
		return &ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("index must be between 0 and %d, got %d", domain.SpecCount-1, index),
		}
	}
	return nil
}

// ValidateAction checks that a resolution action is one of the known set
func ValidateAction(action domain.ReviewAction) error {
	switch action {
	case domain.ActionTakeFile1, domain.ActionTakeFile2, domain.ActionDeleteConflict:
		return nil
	default:
		return &ValidationError{
			Field:   "action",
			Message: fmt.Sprintf("unknown action: %s", action),
		}
	}
}
