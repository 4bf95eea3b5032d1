package shared

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	Name string `json:"name" validate:"required,min=1"`
	Type int64  `json:"type" validate:"gt=0"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("decodes_valid_body", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":"Iron Ore","type":1}`))

		var target decodeTarget
		require.NoError(t, DecodeJSON(r, &target))
		assert.Equal(t, "Iron Ore", target.Name)
		assert.Equal(t, int64(1), target.Type)
	})

	t.Run("malformed_body_is_a_body_violation", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"name":`))

		var target decodeTarget
		err := DecodeJSON(r, &target)

		var fieldErr *FieldValidationError
		require.ErrorAs(t, err, &fieldErr)
		require.Len(t, fieldErr.Violations, 1)
		assert.Equal(t, "body", fieldErr.Violations[0].Field)
		assert.Equal(t, "must be valid JSON", fieldErr.Violations[0].Message)
	})
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	t.Run("valid_struct_passes", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, ValidateRequest(&decodeTarget{Name: "Iron Ore", Type: 1}))
	})

	t.Run("violations_use_json_field_names", func(t *testing.T) {
		t.Parallel()

		err := ValidateRequest(&decodeTarget{})

		var fieldErr *FieldValidationError
		require.ErrorAs(t, err, &fieldErr)
		require.Len(t, fieldErr.Violations, 2)
		assert.Equal(t, "name", fieldErr.Violations[0].Field)
		assert.Equal(t, "is required", fieldErr.Violations[0].Message)
		assert.Equal(t, "type", fieldErr.Violations[1].Field)
		assert.Equal(t, "must be a positive integer", fieldErr.Violations[1].Message)
	})

	t.Run("non_positive_int_message", func(t *testing.T) {
		t.Parallel()

		err := ValidateRequest(&decodeTarget{Name: "Iron Ore", Type: -1})

		var fieldErr *FieldValidationError
		require.ErrorAs(t, err, &fieldErr)
		require.Len(t, fieldErr.Violations, 1)
		assert.Equal(t, "type", fieldErr.Violations[0].Field)
		assert.Equal(t, "must be a positive integer", fieldErr.Violations[0].Message)
	})

	t.Run("custom_validate_takes_precedence", func(t *testing.T) {
		t.Parallel()

		err := ValidateRequest(&customTarget{})

		var fieldErr *FieldValidationError
		require.ErrorAs(t, err, &fieldErr)
		require.Len(t, fieldErr.Violations, 1)
		assert.Equal(t, "body", fieldErr.Violations[0].Field)
	})
}

// customTarget carries a cross-field rule tag validation cannot express.
type customTarget struct {
	Name *string `json:"name"`
	Type *int64  `json:"type"`
}

func (c *customTarget) Validate() error {
	if c.Name == nil && c.Type == nil {
		return NewFieldValidationError("body", "at least one field must be provided")
	}
	return nil
}

func TestFieldValidationErrorMessage(t *testing.T) {
	t.Parallel()

	err := &FieldValidationError{Violations: []FieldViolation{
		{Field: "name", Message: "is required"},
		{Field: "type", Message: "must be a positive integer"},
	}}

	assert.Equal(t, "validation failed: name is required; type must be a positive integer", err.Error())
}
