package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations. These form the
// store half of the error taxonomy: the api layer maps each of them to an
// HTTP status and a stable machine-readable code.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is a generic version of the entity-specific not found
	// errors (e.g., ErrItemNotFound, ErrItemPriceNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a unique
	// constraint (e.g., an item type with an already-used ID).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidReference is returned when a write names a foreign ID that
	// does not exist (e.g., an item with an unknown type ID).
	ErrInvalidReference = errors.New("referenced entity does not exist")

	// ErrValueTooLong is returned when the store rejects a value that
	// exceeds a column length limit.
	ErrValueTooLong = errors.New("value too long for field")

	// ErrStoreFailure is returned for database failures that do not map to
	// any more specific error above. Check the wrapped error for detail.
	ErrStoreFailure = errors.New("database error")

	// Entity-specific "not found" errors

	// ErrItemNotFound indicates that the requested item does not exist.
	ErrItemNotFound = fmt.Errorf("%w: item", ErrNotFound)

	// ErrItemTypeNotFound indicates that the requested item type does not exist.
	ErrItemTypeNotFound = fmt.Errorf("%w: item type", ErrNotFound)

	// ErrItemPriceNotFound indicates that the requested item price does not exist.
	ErrItemPriceNotFound = fmt.Errorf("%w: item price", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error,
// generic or entity-specific.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
