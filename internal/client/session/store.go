// Package session holds the in-memory bearer token attached to outgoing
// requests. It is the single source of truth for "what token, if any, goes
// on the wire"; durable persistence is owned by the auth store.
package session

import "sync"

// TokenStore is a mutex-guarded holder of the current bearer token.
// The zero value is ready to use and means "no token".
type TokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Set replaces the current token.
func (s *TokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear removes the current token. Calling it when the store is already
// empty is a no-op.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// Get returns the current token, or the empty string if none is set.
func (s *TokenStore) Get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}
