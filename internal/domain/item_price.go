package domain

import (
	"fmt"
	"time"
)

// Common validation errors for ItemPrice. Each wraps ErrValidation.
var (
	ErrInvalidPriceItemID = fmt.Errorf("%w: price item ID must be a positive integer", ErrValidation)
	ErrNonPositivePrice   = fmt.Errorf("%w: price must be a positive integer", ErrValidation)
	ErrZeroPriceDate      = fmt.Errorf("%w: price date cannot be zero", ErrValidation)
)

// ItemPrice is a dated price observation for an Item. Price is expressed in
// the market's smallest currency unit. CreatedAt records insertion order and
// is what "latest price" selection is based on, not Date.
type ItemPrice struct {
	ID        int64     `json:"id"`
	ItemID    int64     `json:"itemId"`
	Price     int64     `json:"price"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"-"`
}

// NewItemPrice creates a new ItemPrice observation. The ID and CreatedAt are
// assigned by the store on creation. Returns an error if validation fails.
func NewItemPrice(itemID, price int64, date time.Time) (*ItemPrice, error) {
	p := &ItemPrice{
		ItemID: itemID,
		Price:  price,
		Date:   date,
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks if the ItemPrice has valid data.
// Returns an error if any field fails validation.
func (p *ItemPrice) Validate() error {
	if p.ItemID <= 0 {
		return ErrInvalidPriceItemID
	}

	if p.Price <= 0 {
		return ErrNonPositivePrice
	}

	if p.Date.IsZero() {
		return ErrZeroPriceDate
	}

	return nil
}

// ItemPriceUpdate is a partial patch for an existing ItemPrice. Nil fields
// are left unchanged by the store.
type ItemPriceUpdate struct {
	ItemID *int64
	Price  *int64
	Date   *time.Time
}

// IsEmpty reports whether the patch changes nothing.
func (u ItemPriceUpdate) IsEmpty() bool {
	return u.ItemID == nil && u.Price == nil && u.Date == nil
}

// Validate checks that every field present in the patch is valid.
func (u ItemPriceUpdate) Validate() error {
	if u.ItemID != nil && *u.ItemID <= 0 {
		return ErrInvalidPriceItemID
	}

	if u.Price != nil && *u.Price <= 0 {
		return ErrNonPositivePrice
	}

	if u.Date != nil && u.Date.IsZero() {
		return ErrZeroPriceDate
	}

	return nil
}
