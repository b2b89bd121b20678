// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"

	"libris/internal/domain/service"
	"libris/internal/errors"

	"golang.org/x/crypto/scrypt"
	"golang.org/x/text/unicode/norm"
)

// scrypt cost parameters. They are fixed rather than configurable: every
// stored hash in the user table was derived with them, so changing them
// silently would lock existing users out. With r=8 the derivation touches
// 128*N*r bytes, i.e. 128 MiB per login attempt, which is the point: the
// memory bill is the brute-force deterrent.
const (
	scryptN       = 1 << 17
	scryptR       = 8
	scryptP       = 1
	scryptKeyLen  = 192
	scryptSaltLen = 64
)

// scryptHasher is a concrete implementation of the PasswordHasher interface
// using the scrypt memory-hard key-derivation function.
type scryptHasher struct {
	n       int
	r       int
	p       int
	keyLen  int
	saltLen int
}

// NewScryptHasher is the constructor for scryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewScryptHasher() service.PasswordHasher {
	return &scryptHasher{
		n:       scryptN,
		r:       scryptR,
		p:       scryptP,
		keyLen:  scryptKeyLen,
		saltLen: scryptSaltLen,
	}
}

// GenerateSalt returns a fresh random salt, independent per user.
func (h *scryptHasher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, h.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	return salt, nil
}

// DeriveHash derives the scrypt hash of the plaintext under the given salt.
// The plaintext is NFC-normalized first so visually identical passwords
// typed on different platforms derive the same hash.
func (h *scryptHasher) DeriveHash(plaintext string, salt []byte) ([]byte, error) {
	normalized := norm.NFC.String(plaintext)

	hash, err := scrypt.Key([]byte(normalized), salt, h.n, h.r, h.p, h.keyLen)
	if err != nil {
		return nil, errors.Wrap(err, "scrypt derivation failed")
	}

	return hash, nil
}

// Verify recomputes the hash and compares it against expected in constant
// time. subtle.ConstantTimeCompare never short-circuits on the first
// differing byte, and a length mismatch simply reads as "not equal".
func (h *scryptHasher) Verify(plaintext string, salt, expected []byte) bool {
	computed, err := h.DeriveHash(plaintext, salt)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(computed, expected) == 1
}
