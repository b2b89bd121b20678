package postgres

import (
	"context"
	"time"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// rentalRepository implements the domain.RentalRepository interface using GORM.
type rentalRepository struct {
	db *gorm.DB
}

// NewRentalRepository is the constructor for rentalRepository.
func NewRentalRepository(db *gorm.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

// Create persists a new rental. The partial unique index on active rentals
// rejects a second loan of the same book, so a race between two renters
// resolves here rather than in application code.
func (repo *rentalRepository) Create(ctx context.Context, rental *entity.Rental) error {
	rentalM := fromRentalDomain(rental)

	if err := repo.db.WithContext(ctx).Create(rentalM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBookAlreadyRented.WrapMessage("book already has an active rental")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBookNotFound.WrapMessage("rental references a missing book or user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rental")
	}

	rental.ID = rentalM.ID
	rental.CreatedAt = rentalM.CreatedAt

	return nil
}

// FindByID retrieves a single rental by its unique ID.
func (repo *rentalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rental, error) {
	var rentalM model.RentalModel
	if err := repo.db.WithContext(ctx).First(&rentalM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRentalNotFound
		}

		return nil, errors.Wrap(err, "failed to find rental by id")
	}

	return toRentalDomain(&rentalM), nil
}

// FindActiveForBook retrieves the rental currently out for a book.
func (repo *rentalRepository) FindActiveForBook(ctx context.Context, bookID uuid.UUID) (*entity.Rental, error) {
	var rentalM model.RentalModel
	err := repo.db.WithContext(ctx).
		Where("book_id = ? AND return_date IS NULL", bookID).
		First(&rentalM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNoActiveRental
		}

		return nil, errors.Wrap(err, "failed to find active rental for book")
	}

	return toRentalDomain(&rentalM), nil
}

// MarkReturned closes a rental. The guard on return_date IS NULL makes the
// update idempotent-safe under races: the second caller affects zero rows
// and gets ErrRentalAlreadyReturned.
func (repo *rentalRepository) MarkReturned(ctx context.Context, id uuid.UUID, returnedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RentalModel{}).
		Where("id = ? AND return_date IS NULL", id).
		Update("return_date", returnedAt)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark rental returned")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRentalAlreadyReturned
	}

	return nil
}

// ListForUser returns a user's rentals: active ones ordered first-due-first,
// or the completed history in store-natural order.
func (repo *rentalRepository) ListForUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.Rental, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("return_date IS NULL").Order("rental_date ASC")
	} else {
		query = query.Where("return_date IS NOT NULL")
	}

	var rentalMs []model.RentalModel
	if err := query.Find(&rentalMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list rentals for user")
	}

	rentals := make([]*entity.Rental, 0, len(rentalMs))
	for i := range rentalMs {
		rentals = append(rentals, toRentalDomain(&rentalMs[i]))
	}

	return rentals, nil
}

// ListAllActive returns every active rental joined with the renter's name
// and the book's title, ordered by rental date ascending.
func (repo *rentalRepository) ListAllActive(ctx context.Context) ([]*entity.ActiveRental, error) {
	type activeRentalRow struct {
		RentalID       uuid.UUID
		UserID         uuid.UUID
		UserName       string
		BookID         uuid.UUID
		BookTitle      string
		RentalDate     time.Time
		ReturnDeadline time.Time
	}

	var rows []activeRentalRow
	err := repo.db.WithContext(ctx).
		Model(&model.RentalModel{}).
		Select("rentals.id AS rental_id, rentals.user_id, users.name AS user_name, rentals.book_id, books.title AS book_title, rentals.rental_date, rentals.return_deadline").
		Joins("JOIN users ON users.id = rentals.user_id").
		Joins("JOIN books ON books.id = rentals.book_id").
		Where("rentals.return_date IS NULL").
		Order("rentals.rental_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active rentals")
	}

	actives := make([]*entity.ActiveRental, 0, len(rows))
	for _, row := range rows {
		actives = append(actives, &entity.ActiveRental{
			RentalID:       row.RentalID,
			UserID:         row.UserID,
			UserName:       row.UserName,
			BookID:         row.BookID,
			BookTitle:      row.BookTitle,
			RentalDate:     row.RentalDate,
			ReturnDeadline: row.ReturnDeadline,
		})
	}

	return actives, nil
}

// --- Mapper Functions ---

// toRentalDomain converts a GORM RentalModel to a domain Rental entity.
func toRentalDomain(data *model.RentalModel) *entity.Rental {
	if data == nil {
		return nil
	}

	return &entity.Rental{
		ID:             data.ID,
		BookID:         data.BookID,
		UserID:         data.UserID,
		RentalDate:     data.RentalDate,
		ReturnDeadline: data.ReturnDeadline,
		ReturnDate:     data.ReturnDate,
		CreatedAt:      data.CreatedAt,
	}
}

// fromRentalDomain converts a domain Rental entity to a GORM RentalModel for persistence.
func fromRentalDomain(data *entity.Rental) *model.RentalModel {
	if data == nil {
		return nil
	}

	return &model.RentalModel{
		ID:             data.ID,
		BookID:         data.BookID,
		UserID:         data.UserID,
		RentalDate:     data.RentalDate,
		ReturnDeadline: data.ReturnDeadline,
		ReturnDate:     data.ReturnDate,
	}
}
