package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrBadSignature       = errors.New("token signature invalid")
	ErrExpired            = errors.New("token expired")
	ErrRevoked            = errors.New("token revoked")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrNoActiveToken      = errors.New("no active token")
	ErrCryptoUnavailable  = errors.New("crypto primitive unavailable")
)
