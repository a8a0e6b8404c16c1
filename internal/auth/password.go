package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
)

const saltLength = 16

// Credential is the stored form of a password: SHA256(salt || password).
type Credential struct {
	Salt []byte
	Hash []byte
}

// PasswordHasher salts and hashes passwords with a single SHA-256 round.
// There is no work factor; the scheme is kept so existing rows keep verifying.
type PasswordHasher struct {
	random io.Reader
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{random: rand.Reader}
}

func (h *PasswordHasher) Hash(password string) (Credential, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return Credential{}, fmt.Errorf("%w: read salt: %v", ErrCryptoUnavailable, err)
	}
	return Credential{Salt: salt, Hash: digest(salt, password)}, nil
}

func (h *PasswordHasher) Verify(password string, cred Credential) bool {
	if len(cred.Salt) == 0 || len(cred.Hash) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(digest(cred.Salt, password), cred.Hash) == 1
}

func digest(salt []byte, password string) []byte {
	h := sha256.New()
	h.Write(salt)
	h.Write([]byte(password))
	return h.Sum(nil)
}

// EncodeCredential returns the column values for a credential: hex salt, base64 hash.
func EncodeCredential(cred Credential) (salt, hash string) {
	return hex.EncodeToString(cred.Salt), base64.StdEncoding.EncodeToString(cred.Hash)
}

func DecodeCredential(salt, hash string) (Credential, error) {
	rawSalt, err := hex.DecodeString(salt)
	if err != nil {
		return Credential{}, fmt.Errorf("decode salt: %w", err)
	}
	rawHash, err := base64.StdEncoding.DecodeString(hash)
	if err != nil {
		return Credential{}, fmt.Errorf("decode hash: %w", err)
	}
	return Credential{Salt: rawSalt, Hash: rawHash}, nil
}
