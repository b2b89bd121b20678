package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHasher uses a low cost factor so tests stay fast. The derivation
// path is identical to production; only N shrinks.
func newTestHasher() *scryptHasher {
	return &scryptHasher{
		n:       1 << 4,
		r:       scryptR,
		p:       scryptP,
		keyLen:  scryptKeyLen,
		saltLen: scryptSaltLen,
	}
}

func TestScryptHasher_GenerateSalt(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, first, scryptSaltLen)

	second, err := hasher.GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "salts must be independent per user")
}

func TestScryptHasher_DeriveHash_Deterministic(t *testing.T) {
	hasher := newTestHasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)

	first, err := hasher.DeriveHash("secret", salt)
	require.NoError(t, err)
	assert.Len(t, first, scryptKeyLen)

	second, err := hasher.DeriveHash("secret", salt)
	require.NoError(t, err)
	assert.Equal(t, first, second, "same (plaintext, salt) must yield the same hash")
}

func TestScryptHasher_DeriveHash_NormalizesUnicode(t *testing.T) {
	hasher := newTestHasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)

	// U+00E9 (e-acute) vs "e" + U+0301 (combining acute): same after NFC.
	composed, err := hasher.DeriveHash("café", salt)
	require.NoError(t, err)
	decomposed, err := hasher.DeriveHash("café", salt)
	require.NoError(t, err)

	assert.Equal(t, composed, decomposed)
}

func TestScryptHasher_DeriveHash_InvalidParams(t *testing.T) {
	// scrypt requires N to be a power of two greater than one.
	hasher := &scryptHasher{n: 3, r: scryptR, p: scryptP, keyLen: scryptKeyLen, saltLen: scryptSaltLen}

	_, err := hasher.DeriveHash("secret", []byte("salt"))
	assert.Error(t, err)
}

func TestScryptHasher_Verify(t *testing.T) {
	hasher := newTestHasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	hash, err := hasher.DeriveHash("secret", salt)
	require.NoError(t, err)

	assert.True(t, hasher.Verify("secret", salt, hash))
	assert.False(t, hasher.Verify("wrong", salt, hash))
	assert.False(t, hasher.Verify("", salt, hash))

	// Single-byte mutation of the stored hash must fail verification.
	mutated := append([]byte(nil), hash...)
	mutated[0] ^= 0x01
	assert.False(t, hasher.Verify("secret", salt, mutated))
}

func TestScryptHasher_Verify_LengthMismatch(t *testing.T) {
	hasher := newTestHasher()

	salt, err := hasher.GenerateSalt()
	require.NoError(t, err)
	hash, err := hasher.DeriveHash("secret", salt)
	require.NoError(t, err)

	// A truncated stored hash reads as "not equal", never as an error.
	assert.False(t, hasher.Verify("secret", salt, hash[:len(hash)-1]))
	assert.False(t, hasher.Verify("secret", salt, nil))
}
