package repository

import (
	"context"
	"errors"
	"time"

	"libris/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for rental persistence. They let the application
// layer branch on expected outcomes without touching database errors.
var (
	// ErrRentalNotFound is returned when a rental row does not exist.
	ErrRentalNotFound = errors.New("rental not found")
	// ErrNoActiveRental is returned when a book has no rental currently out.
	ErrNoActiveRental = errors.New("no active rental for book")
	// ErrRentalAlreadyReturned is returned when a return is attempted on a
	// rental whose return date is already set.
	ErrRentalAlreadyReturned = errors.New("rental already returned")
)

// RentalRepository defines the standard operations for rental persistence.
//
// The store owns the no-double-rental invariant: a partial unique index on
// (book_id) where return_date is null makes Create atomically reject a second
// active rental for the same book, so the ledger's check-then-create sequence
// stays correct under concurrent callers.
type RentalRepository interface {
	// Create persists a new rental. If the book already has an active rental
	// the store rejects the insert and the implementation surfaces it as
	// ErrBookAlreadyRented.
	Create(ctx context.Context, rental *entity.Rental) error

	// FindByID retrieves a single rental by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error)

	// FindActiveForBook retrieves the rental currently out for a book, or
	// ErrNoActiveRental when the book is available.
	FindActiveForBook(ctx context.Context, bookID uuid.UUID) (*entity.Rental, error)

	// MarkReturned sets the rental's return date. The update is guarded on
	// return_date still being null; a lost race surfaces as
	// ErrRentalAlreadyReturned. The return date is terminal and never
	// changed afterwards.
	MarkReturned(ctx context.Context, id uuid.UUID, returnedAt time.Time) error

	// ListForUser returns a user's rentals. With activeOnly the result is
	// restricted to unreturned rentals ordered by rental date ascending
	// (first due back first); otherwise it returns the returned ones in
	// store-natural order.
	ListForUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Rental, error)

	// ListAllActive returns every active rental across all users, joined
	// with the renter's name and the book's title.
	ListAllActive(ctx context.Context) ([]*entity.ActiveRental, error)
}
