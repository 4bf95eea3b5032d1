package domain

import "fmt"

// ErrEmptyItemTypeName is returned when an item type has no name.
// It wraps ErrValidation.
var ErrEmptyItemTypeName = fmt.Errorf("%w: item type name cannot be empty", ErrValidation)

// ItemType is a fixed category an Item belongs to. Types are seeded by
// migration and read-only over the public API.
type ItemType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Validate checks if the ItemType has valid data.
func (t *ItemType) Validate() error {
	if t.Name == "" {
		return ErrEmptyItemTypeName
	}
	return nil
}
