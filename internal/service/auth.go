package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/tasktrack/backend/internal/auth"
	"github.com/tasktrack/backend/internal/db"
	"github.com/tasktrack/backend/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, username, salt, passwordHash string, role model.Role) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

// Session is what a successful login hands back to the client.
type Session struct {
	Token     string
	ExpiresIn int64
}

// AuthService owns credential checks and the token lifecycle. Each user
// holds at most one live token: logging in again revokes the previous one.
type AuthService struct {
	users    UserRepository
	hasher   *auth.PasswordHasher
	codec    *auth.TokenCodec
	store    *auth.TokenStore
	revoked  *auth.RevocationList
	validate *validator.Validate
	log      zerolog.Logger
}

func NewAuthService(
	users UserRepository,
	hasher *auth.PasswordHasher,
	codec *auth.TokenCodec,
	store *auth.TokenStore,
	revoked *auth.RevocationList,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		codec:    codec,
		store:    store,
		revoked:  revoked,
		validate: newValidator(),
		log:      log.With().Str("component", "auth").Logger(),
	}
}

func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if err := s.validate.Struct(model.AuthRequest{Username: username, Password: password}); err != nil {
		return validationError(err)
	}

	cred, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	salt, hash := auth.EncodeCredential(cred)

	if _, err := s.users.CreateUser(ctx, username, salt, hash, model.RoleUser); err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return auth.ErrDuplicateUser
		}
		return err
	}

	s.log.Info().Str("username", username).Msg("user registered")
	return nil
}

// Login returns ErrInvalidCredentials for both an unknown user and a wrong
// password so callers cannot tell the two apart.
func (s *AuthService) Login(ctx context.Context, username, password string) (Session, error) {
	if err := s.validate.Struct(model.AuthRequest{Username: username, Password: password}); err != nil {
		return Session{}, validationError(err)
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Session{}, auth.ErrInvalidCredentials
		}
		return Session{}, err
	}

	cred, err := auth.DecodeCredential(user.Salt, user.PasswordHash)
	if err != nil {
		return Session{}, fmt.Errorf("stored credential for %q: %w", user.Username, err)
	}
	if !s.hasher.Verify(password, cred) {
		return Session{}, auth.ErrInvalidCredentials
	}

	if prev, ok := s.store.Get(user.Username); ok && !s.codec.IsExpired(prev) && !s.revoked.IsRevoked(prev) {
		s.revoke(prev)
		s.log.Info().Str("username", user.Username).Msg("previous session revoked by new login")
	}

	token, err := s.codec.Issue(user.Username)
	if err != nil {
		return Session{}, err
	}
	s.store.Save(user.Username, token, s.codec.TTL())

	return Session{Token: token, ExpiresIn: int64(s.codec.TTL().Seconds())}, nil
}

// Logout revokes the caller's stored token. ErrNoActiveToken means there was
// nothing to revoke.
func (s *AuthService) Logout(ctx context.Context, username string) error {
	token, ok := s.store.Get(username)
	if !ok || s.revoked.IsRevoked(token) {
		return auth.ErrNoActiveToken
	}
	if !s.revoke(token) {
		return auth.ErrNoActiveToken
	}
	s.log.Info().Str("username", username).Msg("user logged out")
	return nil
}

// Authenticate resolves the principal behind an Authorization header value.
// The revocation list is consulted before the signature is checked.
func (s *AuthService) Authenticate(ctx context.Context, header string) (*model.Principal, error) {
	token, ok := auth.BearerToken(header)
	if !ok {
		return nil, auth.ErrUnauthenticated
	}
	if s.revoked.IsRevoked(token) {
		return nil, auth.ErrRevoked
	}

	claims, err := s.codec.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown subject", auth.ErrUnauthenticated)
		}
		return nil, err
	}

	if !s.codec.IsValidFor(token, user.Username) {
		if s.codec.IsExpired(token) {
			return nil, auth.ErrExpired
		}
		return nil, auth.ErrUnauthenticated
	}

	return &model.Principal{Username: user.Username, Role: user.Role}, nil
}

func (s *AuthService) revoke(token string) bool {
	exp, _ := s.codec.Expiry(token)
	return s.revoked.Revoke(token, exp)
}
