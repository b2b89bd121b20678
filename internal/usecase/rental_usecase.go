package usecase

import (
	"context"

	"libris/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// RentalWithBook pairs a rental row with the title of the book it loans,
// for user-facing rental lists.
type RentalWithBook struct {
	Rental    *entity.Rental
	BookTitle string
}

// RentalUsecase defines the interface for the rental ledger operations.
type RentalUsecase interface {
	// StartRental loans a book to a user. The return deadline is derived
	// from the configured loan period. Fails with ErrBookNotFound for an
	// unknown book and ErrBookAlreadyRented when the book is out, including
	// when the same user already holds it.
	StartRental(ctx context.Context, userID, bookID uuid.UUID) (*entity.Rental, error)

	// ReturnRental closes a rental owned by the calling user. A rental
	// owned by someone else fails with ErrRentalNotOwned, which shares the
	// not-found response shape so the caller cannot probe foreign rentals.
	ReturnRental(ctx context.Context, userID, rentalID uuid.UUID) (*entity.Rental, error)

	// ListActiveForUser returns the user's open loans ordered by rental
	// date ascending, first due back first. An unknown user fails with
	// ErrUserNotFound rather than listing empty, so the admin per-user
	// view can report a missing user.
	ListActiveForUser(ctx context.Context, userID uuid.UUID) ([]*RentalWithBook, error)

	// ListHistoryForUser returns the user's completed loans. An unknown
	// user fails with ErrUserNotFound.
	ListHistoryForUser(ctx context.Context, userID uuid.UUID) ([]*RentalWithBook, error)

	// ListAllActive returns every open loan across all users with the
	// renter's name and the book's title. Administrators only.
	ListAllActive(ctx context.Context) ([]*entity.ActiveRental, error)
}
