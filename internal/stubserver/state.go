package stubserver

import (
	"crypto/rand"
	"encoding/base64"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"thriftshop-client/internal/domain"
)

const tokenTTL = 48 * time.Hour

type account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}

type tokenMeta struct {
	UserID    string
	ExpiresAt time.Time
}

// State is the in-memory backend: accounts, bearer tokens, catalog and
// per-user favorites. Everything lives for the lifetime of the process.
type State struct {
	mu        sync.Mutex
	users     map[string]*account // keyed by lowercase email
	tokens    map[string]tokenMeta
	items     []domain.Item
	owners    map[string]string   // item id -> user id, empty for seeded items
	favorites map[string][]string // user id -> item ids in favorited order
}

// NewState returns a State pre-loaded with the given catalog.
func NewState(items []domain.Item) *State {
	return &State{
		users:     map[string]*account{},
		tokens:    map[string]tokenMeta{},
		items:     items,
		owners:    map[string]string{},
		favorites: map[string][]string{},
	}
}

func (s *State) issueToken(userID string) (string, error) {
	token, err := randomToken()
	if err != nil {
		return "", err
	}
	s.tokens[token] = tokenMeta{UserID: userID, ExpiresAt: time.Now().Add(tokenTTL)}
	return token, nil
}

// lookupToken resolves a bearer token, expiring it lazily.
func (s *State) lookupToken(token string) (*account, bool) {
	meta, ok := s.tokens[token]
	if !ok {
		return nil, false
	}
	if time.Now().After(meta.ExpiresAt) {
		delete(s.tokens, token)
		return nil, false
	}
	for _, a := range s.users {
		if a.ID == meta.UserID {
			return a, true
		}
	}
	return nil, false
}

func (s *State) findItem(id string) (int, bool) {
	for i := range s.items {
		if s.items[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

func (s *State) userByEmail(email string) (*account, bool) {
	a, ok := s.users[strings.ToLower(strings.TrimSpace(email))]
	return a, ok
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func newID() string {
	return uuid.NewString()
}
