package domain

import "github.com/shopspring/decimal"

// CartLine is one product entry in the cart. Fields other than Quantity are a
// snapshot of the item at the time it was added and are not re-fetched.
type CartLine struct {
	ID       string          `json:"_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Size     string          `json:"size,omitempty"`
	Category string          `json:"category,omitempty"`
	Brand    string          `json:"brand,omitempty"`
	Images   []string        `json:"images"`
	Quantity int             `json:"quantity"`
}

// LineTotal returns price multiplied by quantity.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}
