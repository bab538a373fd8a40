package stubserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"thriftshop-client/internal/domain"
)

type favoriteRequest struct {
	ItemID string `json:"itemId"`
}

func listFavoritesHandler(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := currentUser(c).ID

		state.mu.Lock()
		defer state.mu.Unlock()
		out := make([]domain.Item, 0)
		for _, itemID := range state.favorites[userID] {
			if idx, ok := state.findItem(itemID); ok {
				out = append(out, state.items[idx])
			}
		}
		c.JSON(http.StatusOK, out)
	}
}

func checkFavoriteHandler(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Query("itemId")
		userID := currentUser(c).ID

		state.mu.Lock()
		defer state.mu.Unlock()
		c.JSON(http.StatusOK, gin.H{"isFavorite": containsID(state.favorites[userID], itemID)})
	}
}

func addFavoriteHandler(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req favoriteRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ItemID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "itemId is required"})
			return
		}
		userID := currentUser(c).ID

		state.mu.Lock()
		defer state.mu.Unlock()
		if _, ok := state.findItem(req.ItemID); !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item not found"})
			return
		}
		if !containsID(state.favorites[userID], req.ItemID) {
			state.favorites[userID] = append(state.favorites[userID], req.ItemID)
		}
		c.Status(http.StatusCreated)
	}
}

func removeFavoriteHandler(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID := c.Param("id")
		userID := currentUser(c).ID

		state.mu.Lock()
		defer state.mu.Unlock()
		favs := state.favorites[userID]
		for i, id := range favs {
			if id == itemID {
				state.favorites[userID] = append(favs[:i], favs[i+1:]...)
				break
			}
		}
		c.Status(http.StatusNoContent)
	}
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
