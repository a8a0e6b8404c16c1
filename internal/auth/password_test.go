package auth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source closed")
}

func TestPasswordHasherRoundTrip(t *testing.T) {
	h := NewPasswordHasher()

	for _, pw := range []string{"pw1", "correct horse battery staple", "", "пароль"} {
		cred, err := h.Hash(pw)
		require.NoError(t, err)
		assert.Len(t, cred.Salt, saltLength)
		assert.Len(t, cred.Hash, 32)
		assert.True(t, h.Verify(pw, cred), "password %q should verify", pw)
		assert.False(t, h.Verify(pw+"x", cred))
	}
}

func TestPasswordHasherSaltsDiffer(t *testing.T) {
	h := NewPasswordHasher()

	first, err := h.Hash("pw1")
	require.NoError(t, err)
	second, err := h.Hash("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, first.Salt, second.Salt)
	assert.NotEqual(t, first.Hash, second.Hash)
	assert.True(t, h.Verify("pw1", first))
	assert.True(t, h.Verify("pw1", second))
}

func TestPasswordHasherRejectsOtherPassword(t *testing.T) {
	h := NewPasswordHasher()
	cred, err := h.Hash("pw2")
	require.NoError(t, err)
	assert.False(t, h.Verify("pw1", cred))
	assert.False(t, h.Verify("pw1", Credential{}))
}

func TestPasswordHasherRandomFailure(t *testing.T) {
	h := &PasswordHasher{random: failingReader{}}
	_, err := h.Hash("pw1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCryptoUnavailable)
}

func TestCredentialEncoding(t *testing.T) {
	h := NewPasswordHasher()
	cred, err := h.Hash("pw1")
	require.NoError(t, err)

	salt, hash := EncodeCredential(cred)
	assert.Len(t, salt, saltLength*2)

	decoded, err := DecodeCredential(salt, hash)
	require.NoError(t, err)
	assert.True(t, h.Verify("pw1", decoded))

	_, err = DecodeCredential("zz", hash)
	assert.Error(t, err)
	_, err = DecodeCredential(salt, "***")
	assert.Error(t, err)
}
