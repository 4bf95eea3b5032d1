// Package service implements the per-entity business rules of the catalog:
// live type-set membership on item writes, non-empty partial updates, and
// latest-price composition. Services sit between the HTTP handlers and the
// store interfaces and never touch the database directly.
package service

import (
	"errors"
	"fmt"
	"strings"
)

// Common service errors.
var (
	// ErrEmptyUpdate is returned when a partial update carries no fields.
	ErrEmptyUpdate = errors.New("at least one field must be provided for update")

	// ErrInvalidTypeID is returned when an item write names a type ID that
	// is not in the live item type set.
	ErrInvalidTypeID = errors.New("type ID is not a valid item type")
)

// InvalidTypeIDError reports an item write that named a type ID outside the
// currently valid set. It wraps ErrInvalidTypeID and enumerates the set so
// the message can name the accepted values.
type InvalidTypeIDError struct {
	TypeID  int64
	Allowed []int64
}

// Error implements the error interface for InvalidTypeIDError.
func (e *InvalidTypeIDError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, id := range e.Allowed {
		allowed[i] = fmt.Sprintf("%d", id)
	}
	return fmt.Sprintf("type must be one of %s, got %d", strings.Join(allowed, ", "), e.TypeID)
}

// Unwrap returns ErrInvalidTypeID to support errors.Is.
func (e *InvalidTypeIDError) Unwrap() error {
	return ErrInvalidTypeID
}

// Error is a custom error type for service failures with operation context.
type Error struct {
	Entity    string // The entity type (e.g., "item", "item_price")
	Operation string // The operation that failed (e.g., "create", "update")
	Err       error  // Original error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s service %s failed: %v", e.Entity, e.Operation, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// wrap annotates a store or domain error with service context, preserving
// the wrapped error for classification.
func wrap(entity, operation string, err error) error {
	return &Error{Entity: entity, Operation: operation, Err: err}
}
