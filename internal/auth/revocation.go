package auth

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"sync"
	"time"
)

// RevocationList holds tokens invalidated before their natural expiry.
// Entries are keyed by the SHA-256 of the token's canonical encoding and are
// only ever removed by Sweep, which ignores tokens that have not yet expired.
type RevocationList struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewRevocationList() *RevocationList {
	return &RevocationList{revoked: make(map[string]time.Time)}
}

// Revoke marks token unusable. It reports false when the token was already revoked.
// A zero expiresAt keeps the entry for the process lifetime.
func (l *RevocationList) Revoke(token string, expiresAt time.Time) bool {
	key := revocationKey(token)
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.revoked[key]; ok {
		return false
	}
	l.revoked[key] = expiresAt
	return true
}

func (l *RevocationList) IsRevoked(token string) bool {
	key := revocationKey(token)
	l.mu.RLock()
	_, ok := l.revoked[key]
	l.mu.RUnlock()
	return ok
}

func (l *RevocationList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.revoked)
}

// Sweep forgets revoked tokens that expired before now.
func (l *RevocationList) Sweep(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for key, exp := range l.revoked {
		if !exp.IsZero() && exp.Before(now) {
			delete(l.revoked, key)
			removed++
		}
	}
	return removed
}

func revocationKey(token string) string {
	sum := sha256.Sum256([]byte(canonicalToken(token)))
	return hex.EncodeToString(sum[:])
}

// canonicalToken re-encodes each base64url segment so spellings that differ
// only in unused trailing bits or padding share one revocation entry.
// Anything that is not a three-segment token is returned unchanged.
func canonicalToken(token string) string {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return token
	}
	for i, part := range parts {
		raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(part, "="))
		if err != nil {
			return token
		}
		parts[i] = base64.RawURLEncoding.EncodeToString(raw)
	}
	return strings.Join(parts, ".")
}
