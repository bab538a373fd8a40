// Package cartstore maintains the shopping cart and mirrors it to device
// storage after every mutation.
package cartstore

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/shopspring/decimal"
	"thriftshop-client/internal/domain"
	"thriftshop-client/internal/storage"
)

// PlaceholderImage is used for lines whose source item carries no images.
const PlaceholderImage = "https://via.placeholder.com/150"

const (
	minQuantity = 1
	maxQuantity = 10
)

// Store is the authoritative in-memory cart. Lines keep insertion order and
// hold at most one entry per item id. All mutations persist best-effort; a
// failed write is logged and never surfaced to the caller.
type Store struct {
	mu      sync.Mutex
	lines   []domain.CartLine
	storage storage.Storage
	logger  *log.Logger
}

// New builds a Store rehydrated from the persisted cart. Missing or malformed
// persisted data yields an empty cart; rehydration never fails.
func New(st storage.Storage, logger *log.Logger) *Store {
	s := &Store{storage: st, logger: logger}
	data, ok, err := st.Get(storage.KeyCart)
	if err != nil || !ok {
		return s
	}
	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		s.logger.Printf("discarding unreadable cart: %v", err)
		return s
	}
	s.lines = lines
	return s
}

// AddItem appends a snapshot of item, or merges into the existing line when
// the id is already present. The resulting quantity is clamped to 1..10 on
// both paths.
func (s *Store) AddItem(item domain.Item, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == item.ID {
			s.lines[i].Quantity = clampQuantity(s.lines[i].Quantity + quantity)
			s.persist()
			return
		}
	}

	images := item.Images
	if len(images) == 0 {
		images = []string{PlaceholderImage}
	}
	s.lines = append(s.lines, domain.CartLine{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Size:     item.Size,
		Category: item.Category,
		Brand:    item.Brand,
		Images:   images,
		Quantity: clampQuantity(quantity),
	})
	s.persist()
}

// RemoveItem deletes the line with the given id; absent ids are a no-op.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	s.persist()
}

// UpdateQuantity sets the line's quantity, clamped to 1..10. Absent ids are a
// no-op.
func (s *Store) UpdateQuantity(id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == id {
			s.lines[i].Quantity = clampQuantity(quantity)
			break
		}
	}
	s.persist()
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	s.persist()
}

// Lines returns a copy of the cart in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// ItemCount is the sum of all line quantities.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// Total is the sum of price times quantity over all lines.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// persist writes the full line list under the cart key. Callers hold the lock.
func (s *Store) persist() {
	lines := s.lines
	if lines == nil {
		lines = []domain.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		s.logger.Printf("encode cart: %v", err)
		return
	}
	if err := s.storage.Set(storage.KeyCart, data); err != nil {
		s.logger.Printf("persist cart: %v", err)
	}
}

func clampQuantity(q int) int {
	if q < minQuantity {
		return minQuantity
	}
	if q > maxQuantity {
		return maxQuantity
	}
	return q
}
