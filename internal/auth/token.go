package auth

import (
	"sync"
)

// Token is an OAuth credential pair as it moves through the three-legged
// flow: first a request token, then the same pair with a verifier, finally
// the access token that replaces it.
type Token struct {
	Token    string
	Secret   string
	Verifier string
}

// Valid reports whether the token can sign a request.
func (t *Token) Valid() bool {
	return t != nil && t.Token != "" && t.Secret != ""
}

// TokenStore holds the current credential behind a mutex so one client can
// be shared across goroutines.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns a copy of the current token, or nil.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == nil {
		return nil
	}

	copied := *s.token

	return &copied
}

// Set replaces the current token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// SetVerifier records the user-granted verifier on the current token.
func (s *TokenStore) SetVerifier(verifier string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == nil {
		return false
	}

	s.token.Verifier = verifier

	return true
}

// Clear drops the current token.
func (s *TokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = nil
}
