package postgres

import (
	"context"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookRepository implements the domain.BookRepository interface using GORM.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{db: db}
}

// FindByID retrieves a single book by its unique ID.
func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel
	if err := repo.db.WithContext(ctx).First(&bookM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by id")
	}

	return toBookDomain(&bookM), nil
}

// Create persists a new book entity to the catalog.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required book information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// Update modifies an existing book's catalog fields.
func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"isbn13":       book.ISBN13,
			"title":        book.Title,
			"author":       book.Author,
			"publish_date": book.PublishDate,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update book")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// Count returns the total number of books in the catalog.
func (repo *bookRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.BookModel{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count books")
	}

	return total, nil
}

// ListSummaries returns one catalog page ordered by insertion, with the
// rented flag resolved in the same query via an EXISTS over active rentals.
func (repo *bookRepository) ListSummaries(ctx context.Context, offset, limit int) ([]*entity.BookSummary, error) {
	type bookSummaryRow struct {
		ID     uuid.UUID
		Title  string
		Author string
		Rented bool
	}

	var rows []bookSummaryRow
	err := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Select("books.id, books.title, books.author, EXISTS (SELECT 1 FROM rentals WHERE rentals.book_id = books.id AND rentals.return_date IS NULL) AS rented").
		Order("books.id").
		Offset(offset).
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list book summaries")
	}

	summaries := make([]*entity.BookSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, &entity.BookSummary{
			ID:     row.ID,
			Title:  row.Title,
			Author: row.Author,
			Rented: row.Rented,
		})
	}

	return summaries, nil
}

// --- Mapper Functions ---

// toBookDomain converts a GORM BookModel to a domain Book entity.
func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return &entity.Book{
		ID:          data.ID,
		ISBN13:      data.ISBN13,
		Title:       data.Title,
		Author:      data.Author,
		PublishDate: data.PublishDate,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBookDomain converts a domain Book entity to a GORM BookModel for persistence.
func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:          data.ID,
		ISBN13:      data.ISBN13,
		Title:       data.Title,
		Author:      data.Author,
		PublishDate: data.PublishDate,
	}
}
