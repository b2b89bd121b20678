package usecase

import (
	"context"
	"time"

	"libris/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateBookInput defines the data required to add a book to the catalog.
type CreateBookInput struct {
	ISBN13      int64
	Title       string
	Author      string
	PublishDate time.Time
}

// UpdateBookInput defines the data required to update a catalog entry.
type UpdateBookInput struct {
	ID          uuid.UUID
	ISBN13      int64
	Title       string
	Author      string
	PublishDate time.Time
}

// --- Output DTOs ---

// BookListOutput is one page of the catalog.
type BookListOutput struct {
	Books   []*entity.BookSummary
	Page    int
	MaxPage int
}

// RentalInfo describes the active rental shown on a book's detail page.
type RentalInfo struct {
	UserName       string
	RentalDate     time.Time
	ReturnDeadline time.Time
}

// BookDetailOutput is a single catalog entry with its rental status.
// RentalInfo is nil while the book is available.
type BookDetailOutput struct {
	Book       *entity.Book
	RentalInfo *RentalInfo
}

// BookUsecase defines the interface for catalog operations.
type BookUsecase interface {
	// ListBooks returns one catalog page (1-based). A page beyond the last
	// one fails with ErrPageNotFound; page 1 of an empty catalog is valid
	// and empty.
	ListBooks(ctx context.Context, page int) (*BookListOutput, error)

	// GetBookDetail returns a single book and, if it is currently out, the
	// renter's name and the loan dates.
	GetBookDetail(ctx context.Context, id uuid.UUID) (*BookDetailOutput, error)

	// CreateBook adds a book to the catalog. Administrators only.
	CreateBook(ctx context.Context, input *CreateBookInput) (*entity.Book, error)

	// UpdateBook replaces a book's catalog fields. Administrators only.
	UpdateBook(ctx context.Context, input *UpdateBookInput) (*entity.Book, error)
}
