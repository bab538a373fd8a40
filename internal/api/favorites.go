package api

import (
	"context"
	"net/http"
	"net/url"

	"thriftshop-client/internal/domain"
)

type favoriteCheckResponse struct {
	IsFavorite bool `json:"isFavorite"`
}

type favoriteInput struct {
	ItemID string `json:"itemId"`
}

// CheckFavorite reports whether the item is in the user's favorites.
func (c *Client) CheckFavorite(ctx context.Context, itemID string) (bool, error) {
	q := url.Values{}
	q.Set("itemId", itemID)
	var out favoriteCheckResponse
	if err := c.do(ctx, http.MethodGet, "/api/favorites/check", q, nil, &out); err != nil {
		return false, err
	}
	return out.IsFavorite, nil
}

// AddFavorite marks the item as a favorite.
func (c *Client) AddFavorite(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodPost, "/api/favorites", nil, favoriteInput{ItemID: itemID}, nil)
}

// RemoveFavorite unmarks the item.
func (c *Client) RemoveFavorite(ctx context.Context, itemID string) error {
	return c.do(ctx, http.MethodDelete, "/api/favorites/"+url.PathEscape(itemID), nil, nil, nil)
}

// ListFavorites returns the user's favorite items.
func (c *Client) ListFavorites(ctx context.Context) ([]domain.Item, error) {
	var items []domain.Item
	if err := c.do(ctx, http.MethodGet, "/api/favorites", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
