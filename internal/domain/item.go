package domain

import "github.com/shopspring/decimal"

// Item is a product as served by the storefront backend.
type Item struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Size        string          `json:"size,omitempty"`
	Category    string          `json:"category,omitempty"`
	Brand       string          `json:"brand,omitempty"`
	Era         string          `json:"era,omitempty"`
	Condition   string          `json:"condition,omitempty"`
	Images      []string        `json:"images,omitempty"`
}
