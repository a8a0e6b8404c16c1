package auth

import (
	"sync"
	"time"
)

type storedToken struct {
	token     string
	expiresAt time.Time
}

// TokenStore maps a username to the token most recently issued to it.
// Concurrent saves for the same user are last-writer-wins.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]storedToken
	now    func() time.Time
}

func NewTokenStore() *TokenStore {
	return &TokenStore{
		tokens: make(map[string]storedToken),
		now:    time.Now,
	}
}

func (s *TokenStore) Save(username, token string, ttl time.Duration) {
	entry := storedToken{token: token}
	if ttl > 0 {
		entry.expiresAt = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.tokens[username] = entry
	s.mu.Unlock()
}

func (s *TokenStore) Get(username string) (string, bool) {
	s.mu.RLock()
	entry, ok := s.tokens[username]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	return entry.token, true
}

func (s *TokenStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tokens)
}

// Sweep drops entries whose ttl lapsed before now and returns how many were removed.
func (s *TokenStore) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for username, entry := range s.tokens {
		if !entry.expiresAt.IsZero() && entry.expiresAt.Before(now) {
			delete(s.tokens, username)
			removed++
		}
	}
	return removed
}
