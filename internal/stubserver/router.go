package stubserver

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const userKey = "user"

// BuildRouter wires the storefront REST surface over the given state.
func BuildRouter(logger *log.Logger, state *State) *gin.Engine {
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	// The real backend sits behind a browser SPA on another origin.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)

	auth := router.Group("/api/auth")
	auth.POST("/signup", signupHandler(state))
	auth.POST("/login", loginHandler(state))
	auth.GET("/verify", requireAuth(state), verifyHandler)

	router.PUT("/api/users/profile", requireAuth(state), updateProfileHandler(state))

	items := router.Group("/api/items")
	items.GET("", listItemsHandler(state))
	items.GET("/:id", getItemHandler(state))
	items.POST("", requireAuth(state), createItemHandler(state))
	items.PUT("/:id", requireAuth(state), updateItemHandler(state))
	items.DELETE("/:id", requireAuth(state), deleteItemHandler(state))

	favorites := router.Group("/api/favorites", requireAuth(state))
	favorites.GET("", listFavoritesHandler(state))
	favorites.GET("/check", checkFavoriteHandler(state))
	favorites.POST("", addFavoriteHandler(state))
	favorites.DELETE("/:id", removeFavoriteHandler(state))

	return router
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requireAuth resolves the bearer token to an account and aborts with 401
// otherwise.
func requireAuth(state *State) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid token"})
			return
		}

		state.mu.Lock()
		acc, found := state.lookupToken(strings.TrimSpace(token))
		state.mu.Unlock()
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid token"})
			return
		}

		c.Set(userKey, acc)
		c.Next()
	}
}

func currentUser(c *gin.Context) *account {
	v, _ := c.Get(userKey)
	acc, _ := v.(*account)
	return acc
}
