package api

import "sync"

// Credentials holds the current bearer token. It is shared between the
// client's authorizing transport and the session store, so a single token
// update is visible to every outbound request immediately.
type Credentials struct {
	mu    sync.RWMutex
	token string
}

func NewCredentials(token string) *Credentials {
	return &Credentials{token: token}
}

// Token returns the current bearer token, empty when anonymous.
func (c *Credentials) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Credentials) Set(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Credentials) Clear() {
	c.Set("")
}
