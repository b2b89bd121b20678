package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rental records one loan of one book to one user. A rental is created when
// the loan starts and mutated exactly once, when ReturnDate is set; rows are
// never deleted. A nil ReturnDate marks the rental as active, and the store
// guarantees at most one active rental per book.
type Rental struct {
	ID             uuid.UUID
	BookID         uuid.UUID
	UserID         uuid.UUID
	RentalDate     time.Time  // When the loan started.
	ReturnDeadline time.Time  // When the book is due back.
	ReturnDate     *time.Time // When the book came back; nil while the rental is active.
	CreatedAt      time.Time
}

// Active reports whether the book is still out.
func (r *Rental) Active() bool {
	return r.ReturnDate == nil
}

// ActiveRental is the admin-facing read model for a rental that is still
// out: the rental row joined with the renter's name and the book's title.
// The join is performed by the store, not recomputed in the core.
type ActiveRental struct {
	RentalID       uuid.UUID
	UserID         uuid.UUID
	UserName       string
	BookID         uuid.UUID
	BookTitle      string
	RentalDate     time.Time
	ReturnDeadline time.Time
}
