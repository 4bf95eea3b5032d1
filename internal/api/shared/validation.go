package shared

import (
	"fmt"
	"strings"
)

// FieldViolation is one field-level validation failure: the offending field
// and a human-readable message.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationError carries every field-level violation found in a
// request. Validation never partially applies: when this error is returned,
// none of the decoded input reaches the service layer.
type FieldValidationError struct {
	Violations []FieldViolation
}

// Error implements the error interface for FieldValidationError.
func (e *FieldValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = fmt.Sprintf("%s %s", v.Field, v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewFieldValidationError creates a FieldValidationError with a single violation.
func NewFieldValidationError(field, message string) *FieldValidationError {
	return &FieldValidationError{
		Violations: []FieldViolation{{Field: field, Message: message}},
	}
}
