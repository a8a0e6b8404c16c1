package auth

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	DefaultTokenTTL = 10 * time.Hour
	signingKeyBytes = 32
)

// Claims is the decoded, signature-checked content of a bearer token.
type Claims struct {
	ID        string
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type CodecOption func(*TokenCodec)

// WithTTL overrides the lifetime of issued tokens.
func WithTTL(ttl time.Duration) CodecOption {
	return func(c *TokenCodec) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

func WithClock(now func() time.Time) CodecOption {
	return func(c *TokenCodec) {
		if now != nil {
			c.now = now
		}
	}
}

// TokenCodec issues and checks HS256 JWTs signed with a key owned by this process.
type TokenCodec struct {
	key    []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewSigningKey draws a fresh HMAC key. Tokens signed with a previous key
// stop verifying once the process restarts.
func NewSigningKey() ([]byte, error) {
	key := make([]byte, signingKeyBytes)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("%w: read signing key: %v", ErrCryptoUnavailable, err)
	}
	return key, nil
}

func NewTokenCodec(key []byte, opts ...CodecOption) (*TokenCodec, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: empty signing key", ErrCryptoUnavailable)
	}
	c := &TokenCodec{
		key: key,
		ttl: DefaultTokenTTL,
		now: time.Now,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithoutClaimsValidation(),
			jwt.WithStrictDecoding(),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

func (c *TokenCodec) Issue(subject string) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("%w: token id: %v", ErrCryptoUnavailable, err)
	}

	now := c.now()
	claims := jwt.RegisteredClaims{
		ID:        id.String(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate checks the signature and returns the claims. Expiry is not
// checked here; see IsExpired.
func (c *TokenCodec) Validate(token string) (Claims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := c.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return c.key, nil
	})
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %v", ErrBadSignature, err)
	}
	if !parsed.Valid {
		return Claims{}, ErrBadSignature
	}
	return toClaims(claims), nil
}

// IsExpired decodes the token without verifying it. Callers validate the
// signature first; a token that cannot be decoded is reported as expired.
func (c *TokenCodec) IsExpired(token string) bool {
	exp, ok := c.Expiry(token)
	if !ok {
		return true
	}
	return exp.Before(c.now())
}

func (c *TokenCodec) IsValidFor(token, subject string) bool {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := c.parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	return claims.Subject == subject && !c.IsExpired(token)
}

// Expiry returns the exp claim of an unverified token.
func (c *TokenCodec) Expiry(token string) (time.Time, bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := c.parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func toClaims(rc *jwt.RegisteredClaims) Claims {
	out := Claims{ID: rc.ID, Subject: rc.Subject}
	if rc.IssuedAt != nil {
		out.IssuedAt = rc.IssuedAt.Time
	}
	if rc.ExpiresAt != nil {
		out.ExpiresAt = rc.ExpiresAt.Time
	}
	return out
}
