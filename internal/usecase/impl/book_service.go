package impl

import (
	"context"
	"log/slog"

	"libris/config"
	deliverycontext "libris/internal/delivery/context"
	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// bookService implements the BookUsecase interface.
type bookService struct {
	txManager repository.TransactionManager
	pageSize  int
	logger    *slog.Logger
}

// NewBookService is the constructor for bookService.
func NewBookService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.BookUsecase {
	return &bookService{
		txManager: txManager,
		pageSize:  cfg.Catalog.PageSize,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *bookService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBooks returns one catalog page. Page numbers are 1-based; page 1 is
// always valid so an empty catalog lists as an empty first page rather than
// an error.
func (srv *bookService) ListBooks(ctx context.Context, page int) (*usecase.BookListOutput, error) {
	srv.log(ctx).Debug("Listing books", slog.Int("page", page))

	if page < 1 {
		return nil, errors.Wrap(domainerrors.ErrPageNotFound, "page numbers start at 1")
	}

	var output *usecase.BookListOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()

		total, err := bookRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to count books")
		}

		maxPage := int((total + int64(srv.pageSize) - 1) / int64(srv.pageSize))
		if maxPage == 0 {
			maxPage = 1
		}
		if page > maxPage {
			return errors.Wrap(domainerrors.ErrPageNotFound, "page beyond end of catalog")
		}

		books, err := bookRepo.ListSummaries(ctx, (page-1)*srv.pageSize, srv.pageSize)
		if err != nil {
			return errors.Wrap(err, "failed to list book summaries")
		}

		output = &usecase.BookListOutput{
			Books:   books,
			Page:    page,
			MaxPage: maxPage,
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list books")
	}

	return output, nil
}

// GetBookDetail returns a single book and, when it is currently out, the
// renter's name and the loan dates.
func (srv *bookService) GetBookDetail(ctx context.Context, id uuid.UUID) (*usecase.BookDetailOutput, error) {
	srv.log(ctx).Debug("Getting book detail", slog.Any("bookID", id))

	var output *usecase.BookDetailOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()
		rentalRepo := repoFactory.RentalRepo()
		userRepo := repoFactory.UserRepo()

		book, err := bookRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
			}

			return errors.Wrap(err, "failed to find book")
		}

		output = &usecase.BookDetailOutput{Book: book}

		rental, err := rentalRepo.FindActiveForBook(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNoActiveRental) {
				return nil
			}

			return errors.Wrap(err, "failed to find active rental")
		}

		renter, err := userRepo.FindByID(ctx, rental.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find renter")
		}

		output.RentalInfo = &usecase.RentalInfo{
			UserName:       renter.Name,
			RentalDate:     rental.RentalDate,
			ReturnDeadline: rental.ReturnDeadline,
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get book detail")
	}

	return output, nil
}

// CreateBook adds a book to the catalog.
func (srv *bookService) CreateBook(ctx context.Context, input *usecase.CreateBookInput) (*entity.Book, error) {
	srv.log(ctx).Info("Creating book", slog.String("title", input.Title))

	newBook := &entity.Book{
		ISBN13:      input.ISBN13,
		Title:       input.Title,
		Author:      input.Author,
		PublishDate: input.PublishDate,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.BookRepo().Create(ctx, newBook); err != nil {
			return errors.WithStack(err)
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to create book")
	}
	srv.log(ctx).Debug("Book created", slog.Any("bookID", newBook.ID))

	return newBook, nil
}

// UpdateBook replaces a book's catalog fields.
func (srv *bookService) UpdateBook(ctx context.Context, input *usecase.UpdateBookInput) (*entity.Book, error) {
	srv.log(ctx).Info("Updating book", slog.Any("bookID", input.ID))

	var updated *entity.Book

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.BookRepo()

		book := &entity.Book{
			ID:          input.ID,
			ISBN13:      input.ISBN13,
			Title:       input.Title,
			Author:      input.Author,
			PublishDate: input.PublishDate,
		}
		if err := bookRepo.Update(ctx, book); err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return errors.Wrap(domainerrors.ErrBookNotFound, "book not found")
			}

			return errors.WithStack(err)
		}

		fresh, err := bookRepo.FindByID(ctx, input.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload updated book")
		}
		updated = fresh

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update book")
	}

	return updated, nil
}
