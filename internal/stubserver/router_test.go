package stubserver

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"thriftshop-client/internal/domain"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestRouter(t *testing.T) (*gin.Engine, *State) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	state := NewState(SeedItems())
	return BuildRouter(logDiscard(), state), state
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// signupTester registers an account and returns its token.
func signupTester(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/auth/signup", "",
		`{"name":"Ada","email":"ada@example.com","password":"Sup3rSecret"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup: expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode signup response: %v", err)
	}
	if resp.Token == "" || resp.User.ID == "" {
		t.Fatalf("incomplete signup response: %s", rec.Body.String())
	}
	return resp.Token
}

func TestListItemsAndFilters(t *testing.T) {
	router, state := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/items", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var items []domain.Item
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(items) != len(state.items) {
		t.Fatalf("expected %d items, got %d", len(state.items), len(items))
	}

	rec = doJSON(t, router, http.MethodGet, "/api/items?era=90s&category=jeans", "", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode filtered items: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Levi's 501 Jeans" {
		t.Fatalf("unexpected filtered result: %+v", items)
	}
}

func TestGetItemNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/items/nope", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"message"`) {
		t.Fatalf("expected message body, got %s", rec.Body.String())
	}
}

func TestFavoritesRequireAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/favorites", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestFavoritesFlow(t *testing.T) {
	router, state := newTestRouter(t)
	token := signupTester(t, router)
	itemID := state.items[0].ID

	rec := doJSON(t, router, http.MethodGet, "/api/favorites/check?itemId="+itemID, token, "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"isFavorite":false`) {
		t.Fatalf("expected not-favorite, got %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, "/api/favorites", token, `{"itemId":"`+itemID+`"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add favorite: expected 201, got %d %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/api/favorites/check?itemId="+itemID, token, "")
	if !strings.Contains(rec.Body.String(), `"isFavorite":true`) {
		t.Fatalf("expected favorite, got %s", rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodGet, "/api/favorites", token, "")
	var favs []domain.Item
	if err := json.Unmarshal(rec.Body.Bytes(), &favs); err != nil {
		t.Fatalf("decode favorites: %v", err)
	}
	if len(favs) != 1 || favs[0].ID != itemID {
		t.Fatalf("unexpected favorites: %+v", favs)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/favorites/"+itemID, token, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("remove favorite: expected 204, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodGet, "/api/favorites/check?itemId="+itemID, token, "")
	if !strings.Contains(rec.Body.String(), `"isFavorite":false`) {
		t.Fatalf("expected removed, got %s", rec.Body.String())
	}
}

func TestAddFavoriteUnknownItem(t *testing.T) {
	router, _ := newTestRouter(t)
	token := signupTester(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/favorites", token, `{"itemId":"nope"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestItemCRUDOwnership(t *testing.T) {
	router, _ := newTestRouter(t)
	token := signupTester(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/items", token,
		`{"name":"Denim Jacket","price":"45.00","category":"Jackets","era":"80s"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d %s", rec.Code, rec.Body.String())
	}
	var created domain.Item
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created item: %v", err)
	}

	rec = doJSON(t, router, http.MethodPut, "/api/items/"+created.ID, token,
		`{"name":"Denim Jacket (faded)","price":"40.00"}`)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "faded") {
		t.Fatalf("update: got %d %s", rec.Code, rec.Body.String())
	}

	// A second account cannot touch the listing.
	rec = doJSON(t, router, http.MethodPost, "/api/auth/signup", "",
		`{"name":"Eve","email":"eve@example.com","password":"Sup3rSecret"}`)
	var other struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &other); err != nil {
		t.Fatalf("decode second signup: %v", err)
	}
	rec = doJSON(t, router, http.MethodDelete, "/api/items/"+created.ID, other.Token, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/items/"+created.ID, token, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
	rec = doJSON(t, router, http.MethodGet, "/api/items/"+created.ID, "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}
