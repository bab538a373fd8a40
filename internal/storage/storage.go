// Package storage provides device-local key/value persistence for client
// state, the equivalent of browser local storage.
package storage

// Well-known keys shared by the stores.
const (
	KeyToken = "token"
	KeyCart  = "cart"
)

// Storage persists small opaque values under fixed keys.
type Storage interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) ([]byte, bool, error)
	// Set writes the value, replacing any previous one.
	Set(key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
}
