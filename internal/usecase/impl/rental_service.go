package impl

import (
	"context"
	"log/slog"
	"time"

	"libris/config"
	deliverycontext "libris/internal/delivery/context"
	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// rentalService implements the RentalUsecase interface.
type rentalService struct {
	txManager  repository.TransactionManager
	loanPeriod time.Duration
	logger     *slog.Logger
}

// NewRentalService is the constructor for rentalService.
func NewRentalService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RentalUsecase {
	return &rentalService{
		txManager:  txManager,
		loanPeriod: time.Duration(cfg.Rental.LoanPeriodDays) * 24 * time.Hour,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *rentalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// StartRental loans a book to a user. The store's partial unique index on
// active rentals resolves races between concurrent renters, so a book can
// never be loaned twice even when two requests pass the availability check.
func (srv *rentalService) StartRental(ctx context.Context, userID, bookID uuid.UUID) (*entity.Rental, error) {
	srv.log(ctx).Info("Starting rental", slog.Any("userID", userID), slog.Any("bookID", bookID))

	now := time.Now()
	rental := &entity.Rental{
		BookID:         bookID,
		UserID:         userID,
		RentalDate:     now,
		ReturnDeadline: now.Add(srv.loanPeriod),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()
		rentalRepo := repoFactory.RentalRepo()

		// 1. The book must exist.
		if _, err := bookRepo.FindByID(ctx, bookID); err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
			}

			return errors.Wrap(err, "failed to find book")
		}

		// 2. Insert the rental; the store rejects it when the book is out.
		if err := rentalRepo.Create(ctx, rental); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Rental failed", slog.Any("bookID", bookID), slog.String("error", err.Error()))

		return nil, errors.Wrap(err, "failed to execute rental transaction")
	}
	srv.log(ctx).Debug("Rental started", slog.Any("rentalID", rental.ID))

	return rental, nil
}

// ReturnRental closes a rental owned by the calling user.
func (srv *rentalService) ReturnRental(ctx context.Context, userID, rentalID uuid.UUID) (*entity.Rental, error) {
	srv.log(ctx).Info("Returning rental", slog.Any("userID", userID), slog.Any("rentalID", rentalID))

	now := time.Now()
	var returned *entity.Rental

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		rentalRepo := repoFactory.RentalRepo()

		rental, err := rentalRepo.FindByID(ctx, rentalID)
		if err != nil {
			if errors.Is(err, repository.ErrRentalNotFound) {
				return errors.Wrap(domainerrors.ErrRentalNotFound, "rental not found")
			}

			return errors.Wrap(err, "failed to find rental")
		}

		// Only the renter may return the book. The error carries the
		// not-found response shape so foreign rental ids are unprobeable.
		if rental.UserID != userID {
			return errors.Wrap(domainerrors.ErrRentalNotOwned, "rental not owned by caller")
		}

		if !rental.Active() {
			return errors.Wrap(domainerrors.ErrRentalAlreadyReturned, "rental already returned")
		}

		if err := rentalRepo.MarkReturned(ctx, rentalID, now); err != nil {
			if errors.Is(err, repository.ErrRentalAlreadyReturned) {
				return errors.Wrap(domainerrors.ErrRentalAlreadyReturned, "rental already returned")
			}

			return errors.WithStack(err)
		}

		rental.ReturnDate = &now
		returned = rental

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Return failed", slog.Any("rentalID", rentalID), slog.String("error", err.Error()))

		return nil, errors.Wrap(err, "failed to execute return transaction")
	}
	srv.log(ctx).Debug("Rental returned", slog.Any("rentalID", rentalID))

	return returned, nil
}

// ListActiveForUser returns the user's open loans, first due back first.
func (srv *rentalService) ListActiveForUser(ctx context.Context, userID uuid.UUID) ([]*usecase.RentalWithBook, error) {
	return srv.listForUser(ctx, userID, true)
}

// ListHistoryForUser returns the user's completed loans.
func (srv *rentalService) ListHistoryForUser(ctx context.Context, userID uuid.UUID) ([]*usecase.RentalWithBook, error) {
	return srv.listForUser(ctx, userID, false)
}

func (srv *rentalService) listForUser(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*usecase.RentalWithBook, error) {
	srv.log(ctx).Debug("Listing rentals for user", slog.Any("userID", userID), slog.Bool("activeOnly", activeOnly))

	var result []*usecase.RentalWithBook

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		rentalRepo := repoFactory.RentalRepo()
		bookRepo := repoFactory.BookRepo()

		// The user must exist; an unknown id is a not-found, not an empty
		// list. The admin per-user view depends on the distinction.
		if _, err := userRepo.FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		rentals, err := rentalRepo.ListForUser(ctx, userID, activeOnly)
		if err != nil {
			return errors.Wrap(err, "failed to list rentals")
		}

		result = make([]*usecase.RentalWithBook, 0, len(rentals))
		for _, rental := range rentals {
			book, err := bookRepo.FindByID(ctx, rental.BookID)
			if err != nil {
				return errors.Wrap(err, "failed to find rented book")
			}

			result = append(result, &usecase.RentalWithBook{
				Rental:    rental,
				BookTitle: book.Title,
			})
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list rentals for user")
	}

	return result, nil
}

// ListAllActive returns every open loan across all users.
func (srv *rentalService) ListAllActive(ctx context.Context) ([]*entity.ActiveRental, error) {
	srv.log(ctx).Debug("Listing all active rentals")

	var actives []*entity.ActiveRental

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.RentalRepo().ListAllActive(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list active rentals")
		}
		actives = found

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list all active rentals")
	}

	return actives, nil
}
