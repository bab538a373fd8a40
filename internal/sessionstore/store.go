// Package sessionstore owns the authentication lifecycle: token persistence,
// startup verification, and the login/register/logout/update flows.
package sessionstore

import (
	"context"
	"errors"
	"log"
	"sync"

	"thriftshop-client/internal/api"
	"thriftshop-client/internal/domain"
	"thriftshop-client/internal/storage"
)

// ErrSuperseded is returned when an auth call resolves after a newer session
// action (typically a logout) has already replaced the state it would adopt.
var ErrSuperseded = errors.New("superseded by a newer session action")

// Fallback messages when the backend supplies none.
const (
	msgVerifyFailed   = "Authentication failed"
	msgLoginFailed    = "Login failed"
	msgRegisterFailed = "Registration failed"
	msgUpdateFailed   = "Profile update failed"
)

type backend interface {
	Verify(ctx context.Context) (*domain.User, error)
	Signup(ctx context.Context, in api.SignupInput) (*api.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	UpdateProfile(ctx context.Context, in api.ProfileUpdate) (*domain.User, error)
}

// Store holds at most one authenticated identity. The profile lives only in
// memory; the bearer token is mirrored to device storage so a later process
// can rehydrate the session.
type Store struct {
	mu      sync.Mutex
	backend backend
	creds   *api.Credentials
	storage storage.Storage
	logger  *log.Logger

	user    *domain.User
	loading bool
	errMsg  string

	// gen invalidates in-flight calls: any result captured under an older
	// generation is discarded instead of resurrecting abandoned state.
	gen uint64
}

// New builds a Store and loads a persisted token into creds. It performs no
// network I/O; call Init to verify the token.
func New(client *api.Client, creds *api.Credentials, st storage.Storage, logger *log.Logger) *Store {
	s := &Store{backend: client, creds: creds, storage: st, logger: logger}
	data, ok, err := st.Get(storage.KeyToken)
	if err != nil {
		logger.Printf("read persisted token: %v", err)
		return s
	}
	if ok {
		creds.Set(string(data))
	}
	return s
}

// Init verifies a rehydrated token against the backend. An invalid token is
// discarded and the session becomes anonymous; Init never returns an error.
func (s *Store) Init(ctx context.Context) {
	s.mu.Lock()
	if s.creds.Token() == "" {
		s.mu.Unlock()
		return
	}
	gen := s.gen
	s.loading = true
	s.mu.Unlock()

	user, err := s.backend.Verify(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.loading = false
	if err != nil {
		s.logger.Printf("session verify failed: %v", err)
		s.discardTokenLocked()
		s.user = nil
		s.errMsg = api.Message(err, msgVerifyFailed)
		return
	}
	s.user = user
	s.errMsg = ""
}

// Login exchanges credentials for a session. On failure the previous session,
// if any, is left untouched and the error is returned for the UI to display.
func (s *Store) Login(ctx context.Context, email, password string) error {
	resp, gen, err := s.runAuth(func() (*api.AuthResponse, error) {
		return s.backend.Login(ctx, email, password)
	}, msgLoginFailed)
	if err != nil {
		return err
	}
	return s.adopt(resp, gen)
}

// Register creates an account and logs it in, mirroring Login.
func (s *Store) Register(ctx context.Context, in api.SignupInput) error {
	resp, gen, err := s.runAuth(func() (*api.AuthResponse, error) {
		return s.backend.Signup(ctx, in)
	}, msgRegisterFailed)
	if err != nil {
		return err
	}
	return s.adopt(resp, gen)
}

// UpdateProfile applies a partial profile change. On success the in-memory
// profile is replaced with the server's response.
func (s *Store) UpdateProfile(ctx context.Context, in api.ProfileUpdate) error {
	s.mu.Lock()
	gen := s.gen
	s.loading = true
	s.mu.Unlock()

	user, err := s.backend.UpdateProfile(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return ErrSuperseded
	}
	s.loading = false
	if err != nil {
		s.errMsg = api.Message(err, msgUpdateFailed)
		return err
	}
	s.user = user
	s.errMsg = ""
	return nil
}

// Logout discards the token and profile unconditionally. It never fails.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.discardTokenLocked()
	s.user = nil
	s.errMsg = ""
	s.loading = false
}

// User returns the authenticated profile, nil when anonymous.
func (s *Store) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Store) IsAuthenticated() bool {
	return s.User() != nil
}

// Loading reports whether an auth round-trip is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last failure message, empty after any success.
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// runAuth wraps a token-exchange call with the loading flag, the generation
// guard and error-message bookkeeping. The generation captured at call start
// is returned so adoption can re-check it.
func (s *Store) runAuth(call func() (*api.AuthResponse, error), fallback string) (*api.AuthResponse, uint64, error) {
	s.mu.Lock()
	gen := s.gen
	s.loading = true
	s.mu.Unlock()

	resp, err := call()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return nil, gen, ErrSuperseded
	}
	s.loading = false
	if err != nil {
		s.errMsg = api.Message(err, fallback)
		return nil, gen, err
	}
	return resp, gen, nil
}

// adopt installs a fresh token and profile unless a newer session action
// landed in the meantime. Adoption bumps the generation so any older
// in-flight call cannot override the new session.
func (s *Store) adopt(resp *api.AuthResponse, gen uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return ErrSuperseded
	}
	s.gen++
	s.creds.Set(resp.Token)
	if err := s.storage.Set(storage.KeyToken, []byte(resp.Token)); err != nil {
		s.logger.Printf("persist token: %v", err)
	}
	user := resp.User
	s.user = &user
	s.errMsg = ""
	return nil
}

func (s *Store) discardTokenLocked() {
	s.creds.Clear()
	if err := s.storage.Delete(storage.KeyToken); err != nil {
		s.logger.Printf("discard token: %v", err)
	}
}
