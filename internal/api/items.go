package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
	"thriftshop-client/internal/domain"
)

// ItemFilters narrows ListItems; empty fields are omitted from the query.
type ItemFilters struct {
	Category  string
	Era       string
	Size      string
	Condition string
}

func (f ItemFilters) query() url.Values {
	q := url.Values{}
	set := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	set("category", f.Category)
	set("era", f.Era)
	set("size", f.Size)
	set("condition", f.Condition)
	return q
}

// ItemInput is the payload for creating or updating a listing.
type ItemInput struct {
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

// ListItems returns the catalog, optionally filtered.
func (c *Client) ListItems(ctx context.Context, filters ItemFilters) ([]domain.Item, error) {
	var items []domain.Item
	if err := c.do(ctx, http.MethodGet, "/api/items", filters.query(), nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem returns one item by id.
func (c *Client) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	var item domain.Item
	if err := c.do(ctx, http.MethodGet, "/api/items/"+url.PathEscape(id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem publishes a new listing. Requires authentication.
func (c *Client) CreateItem(ctx context.Context, in ItemInput) (*domain.Item, error) {
	var item domain.Item
	if err := c.do(ctx, http.MethodPost, "/api/items", nil, in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem replaces a listing. Requires authentication.
func (c *Client) UpdateItem(ctx context.Context, id string, in ItemInput) (*domain.Item, error) {
	var item domain.Item
	if err := c.do(ctx, http.MethodPut, "/api/items/"+url.PathEscape(id), nil, in, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes a listing. Requires authentication.
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/items/"+url.PathEscape(id), nil, nil, nil)
}
