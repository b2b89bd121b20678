// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for salted password hashing and
// verification. This abstracts the underlying key-derivation function
// (scrypt in the concrete implementation), keeping the domain pure.
type PasswordHasher interface {
	// GenerateSalt returns a fresh cryptographically random salt. Each user
	// gets their own, generated at registration.
	GenerateSalt() ([]byte, error)

	// DeriveHash derives the salted hash of a plaintext password. The
	// derivation is deterministic: the same (plaintext, salt) pair always
	// yields the same hash.
	DeriveHash(plaintext string, salt []byte) ([]byte, error)

	// Verify recomputes the hash for the plaintext and compares it against
	// the expected hash in constant time. It returns false, never an error,
	// on any mismatch including a hash-length mismatch.
	Verify(plaintext string, salt, expected []byte) bool
}
