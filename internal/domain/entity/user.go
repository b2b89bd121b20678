// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. It carries the stored credential material
// (hash and salt) and must therefore never cross the delivery boundary as-is;
// handlers expose a Principal instead.
type User struct {
	ID           uuid.UUID // The unique identifier for the user account.
	Email        string    // The user's email address, used as the login identifier. Unique.
	Name         string    // The user's display name.
	PasswordHash []byte    // The scrypt-derived hash of the user's password.
	Salt         []byte    // The per-user random salt the hash was derived with.
	IsAdmin      bool      // Whether the user may access the administrative surface.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
