package domain

import "fmt"

// Common validation errors for Item. Each wraps ErrValidation.
var (
	ErrEmptyItemName     = fmt.Errorf("%w: item name cannot be empty", ErrValidation)
	ErrInvalidItemTypeID = fmt.Errorf("%w: item type ID must be a positive integer", ErrValidation)
)

// Item represents a catalog entry: a named good that belongs to exactly one
// item type. The ID is assigned by the store on creation.
type Item struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	TypeID int64  `json:"typeId"`
}

// NewItem creates a new Item with the given name and type ID. The ID is left
// zero until the store assigns one. Returns an error if validation fails.
func NewItem(name string, typeID int64) (*Item, error) {
	item := &Item{
		Name:   name,
		TypeID: typeID,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the Item has valid data.
// Returns an error if any field fails validation.
func (i *Item) Validate() error {
	if i.Name == "" {
		return ErrEmptyItemName
	}

	if i.TypeID <= 0 {
		return ErrInvalidItemTypeID
	}

	return nil
}

// ItemUpdate is a partial patch for an existing Item. Nil fields are left
// unchanged by the store.
type ItemUpdate struct {
	Name   *string
	TypeID *int64
}

// IsEmpty reports whether the patch changes nothing.
func (u ItemUpdate) IsEmpty() bool {
	return u.Name == nil && u.TypeID == nil
}

// Validate checks that every field present in the patch is valid.
func (u ItemUpdate) Validate() error {
	if u.Name != nil && *u.Name == "" {
		return ErrEmptyItemName
	}

	if u.TypeID != nil && *u.TypeID <= 0 {
		return ErrInvalidItemTypeID
	}

	return nil
}

// ItemWithPrice is the read-only projection of an Item together with its
// latest observed price. Items with no recorded prices report a price of 0.
type ItemWithPrice struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	TypeID int64  `json:"typeId"`
	Price  int64  `json:"price"`
}

// ItemPriceHistory is the read-only projection of an Item together with all
// of its price observations, ordered newest first.
type ItemPriceHistory struct {
	Item   Item
	Prices []ItemPrice
}

// String implements fmt.Stringer for diagnostic output.
func (i *Item) String() string {
	return fmt.Sprintf("Item(%d, %q, type=%d)", i.ID, i.Name, i.TypeID)
}
