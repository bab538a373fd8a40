package stubserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"thriftshop-client/internal/domain"
)

type itemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Size        string          `json:"size"`
	Category    string          `json:"category"`
	Brand       string          `json:"brand"`
	Era         string          `json:"era"`
	Condition   string          `json:"condition"`
	Images      []string        `json:"images"`
}

func listItemsHandler(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		filters := map[string]func(domain.Item) string{
			"category":  func(i domain.Item) string { return i.Category },
			"era":       func(i domain.Item) string { return i.Era },
			"size":      func(i domain.Item) string { return i.Size },
			"condition": func(i domain.Item) string { return i.Condition },
		}

		state.mu.Lock()
		defer state.mu.Unlock()
		out := make([]domain.Item, 0, len(state.items))
	scan:
		for _, item := range state.items {
			for key, field := range filters {
				want := c.Query(key)
				if want != "" && !strings.EqualFold(field(item), want) {
					continue scan
				}
			}
			out = append(out, item)
		}
		c.JSON(http.StatusOK, out)
	}
}

func getItemHandler(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		state.mu.Lock()
		defer state.mu.Unlock()
		idx, ok := state.findItem(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
		c.JSON(http.StatusOK, state.items[idx])
	}
}

func createItemHandler(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req itemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name is required"})
			return
		}
		item := domain.Item{
			ID:          newID(),
			Name:        strings.TrimSpace(req.Name),
			Description: req.Description,
			Price:       req.Price,
			Size:        req.Size,
			Category:    req.Category,
			Brand:       req.Brand,
			Era:         req.Era,
			Condition:   req.Condition,
			Images:      req.Images,
		}

		state.mu.Lock()
		defer state.mu.Unlock()
		state.items = append(state.items, item)
		state.owners[item.ID] = currentUser(c).ID
		c.JSON(http.StatusCreated, item)
	}
}

func updateItemHandler(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req itemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		state.mu.Lock()
		defer state.mu.Unlock()
		idx, ok := state.findItem(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
		if state.owners[state.items[idx].ID] != currentUser(c).ID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Not your listing"})
			return
		}

		item := &state.items[idx]
		item.Name = strings.TrimSpace(req.Name)
		item.Description = req.Description
		item.Price = req.Price
		item.Size = req.Size
		item.Category = req.Category
		item.Brand = req.Brand
		item.Era = req.Era
		item.Condition = req.Condition
		item.Images = req.Images
		c.JSON(http.StatusOK, *item)
	}
}

func deleteItemHandler(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		state.mu.Lock()
		defer state.mu.Unlock()
		idx, ok := state.findItem(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
		id := state.items[idx].ID
		if state.owners[id] != currentUser(c).ID {
			c.JSON(http.StatusForbidden, gin.H{"message": "Not your listing"})
			return
		}
		state.items = append(state.items[:idx], state.items[idx+1:]...)
		delete(state.owners, id)
		c.Status(http.StatusNoContent)
	}
}
