package stubserver

import (
	"github.com/shopspring/decimal"
	"thriftshop-client/internal/domain"
)

// SeedItems is the catalog the stub starts with, enough variety to exercise
// every list filter.
func SeedItems() []domain.Item {
	return []domain.Item{
		{
			ID:        newID(),
			Name:      "Levi's 501 Jeans",
			Price:     decimal.NewFromFloat(65.00),
			Size:      "M",
			Category:  "Jeans",
			Brand:     "Levi's",
			Era:       "90s",
			Condition: "Good",
			Images:    []string{"https://img.example.com/levis-501.jpg"},
		},
		{
			ID:        newID(),
			Name:      "Wool Overcoat",
			Price:     decimal.NewFromFloat(120.50),
			Size:      "L",
			Category:  "Coats",
			Brand:     "Burberry",
			Era:       "80s",
			Condition: "Excellent",
			Images:    []string{"https://img.example.com/wool-overcoat.jpg"},
		},
		{
			ID:        newID(),
			Name:      "Band Tee",
			Price:     decimal.NewFromFloat(28.00),
			Size:      "S",
			Category:  "T-Shirts",
			Brand:     "Hanes",
			Era:       "00s",
			Condition: "Fair",
		},
		{
			ID:        newID(),
			Name:      "Leather Jacket",
			Price:     decimal.NewFromFloat(210.00),
			Size:      "M",
			Category:  "Jackets",
			Brand:     "Schott",
			Era:       "70s",
			Condition: "Good",
			Images:    []string{"https://img.example.com/leather-jacket-front.jpg", "https://img.example.com/leather-jacket-back.jpg"},
		},
	}
}
