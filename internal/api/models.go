package api

import (
	"time"

	"github.com/tradepost/market-api/internal/domain"
)

// Response projections. Each endpoint returns an explicitly enumerated
// struct rather than a dynamically assembled shape.

// ItemResponse represents the response data for an item.
type ItemResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	TypeID int64  `json:"typeId"`
}

// ItemTypeResponse represents the response data for an item type.
type ItemTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ItemWithPriceResponse represents an item together with its latest price.
type ItemWithPriceResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	TypeID int64  `json:"typeId"`
	Price  int64  `json:"price"`
}

// PriceEntryResponse is one observation inside an item's price history.
type PriceEntryResponse struct {
	ID    int64     `json:"id"`
	Price int64     `json:"price"`
	Date  time.Time `json:"date"`
}

// ItemPriceHistoryResponse represents an item with its full price history,
// newest first.
type ItemPriceHistoryResponse struct {
	ID     int64                `json:"id"`
	Name   string               `json:"name"`
	TypeID int64                `json:"typeId"`
	Prices []PriceEntryResponse `json:"prices"`
}

// ItemPriceResponse represents the response data for a price observation.
type ItemPriceResponse struct {
	ID     int64     `json:"id"`
	ItemID int64     `json:"itemId"`
	Price  int64     `json:"price"`
	Date   time.Time `json:"date"`
}

func itemToResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:     item.ID,
		Name:   item.Name,
		TypeID: item.TypeID,
	}
}

func itemsToResponse(items []domain.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i := range items {
		out[i] = itemToResponse(&items[i])
	}
	return out
}

func itemTypeToResponse(t *domain.ItemType) ItemTypeResponse {
	return ItemTypeResponse{ID: t.ID, Name: t.Name}
}

func itemTypesToResponse(types []domain.ItemType) []ItemTypeResponse {
	out := make([]ItemTypeResponse, len(types))
	for i := range types {
		out[i] = itemTypeToResponse(&types[i])
	}
	return out
}

func itemsWithPriceToResponse(items []domain.ItemWithPrice) []ItemWithPriceResponse {
	out := make([]ItemWithPriceResponse, len(items))
	for i, item := range items {
		out[i] = ItemWithPriceResponse{
			ID:     item.ID,
			Name:   item.Name,
			TypeID: item.TypeID,
			Price:  item.Price,
		}
	}
	return out
}

func priceHistoryToResponse(history *domain.ItemPriceHistory) ItemPriceHistoryResponse {
	prices := make([]PriceEntryResponse, len(history.Prices))
	for i, p := range history.Prices {
		prices[i] = PriceEntryResponse{ID: p.ID, Price: p.Price, Date: p.Date}
	}
	return ItemPriceHistoryResponse{
		ID:     history.Item.ID,
		Name:   history.Item.Name,
		TypeID: history.Item.TypeID,
		Prices: prices,
	}
}

func itemPriceToResponse(price *domain.ItemPrice) ItemPriceResponse {
	return ItemPriceResponse{
		ID:     price.ID,
		ItemID: price.ItemID,
		Price:  price.Price,
		Date:   price.Date,
	}
}
