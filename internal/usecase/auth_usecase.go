// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"libris/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the authenticated principal together with the signed
// session token the delivery layer hands to the client.
type LoginOutput struct {
	Principal *entity.Principal
	Token     string
}

// AuthUsecase defines the interface for credential and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account from the given credentials. The stored
	// credential is a freshly salted hash; the plaintext password is never
	// persisted. A duplicate email fails with ErrEmailTaken.
	Register(ctx context.Context, input *RegisterInput) (*entity.Principal, error)

	// Login verifies the credentials and mints a session token. Unknown
	// email and wrong password both fail with ErrInvalidCredentials and are
	// indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
