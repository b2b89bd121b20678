package repository

import (
	"context"
	"errors"

	"libris/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookNotFound is returned when a book is not found in the catalog.
var ErrBookNotFound = errors.New("book not found")

// BookRepository defines the standard operations for catalog persistence.
type BookRepository interface {
	// FindByID retrieves a single book by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// Create persists a new book entity to the catalog.
	Create(ctx context.Context, book *entity.Book) error

	// Update modifies an existing book entity. Returns ErrBookNotFound if
	// the book does not exist.
	Update(ctx context.Context, book *entity.Book) error

	// Count returns the total number of books in the catalog.
	Count(ctx context.Context) (int64, error)

	// ListSummaries returns one catalog page with each book's rented flag
	// resolved by the store (a book is rented while it has an active rental).
	ListSummaries(ctx context.Context, offset, limit int) ([]*entity.BookSummary, error)
}
