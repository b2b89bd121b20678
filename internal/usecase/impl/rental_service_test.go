package impl

import (
	"context"
	"testing"
	"time"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	mockRepo "libris/internal/mocks/repository"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// rentalServiceFixtures holds all test dependencies for rental service tests.
type rentalServiceFixtures struct {
	t         *testing.T
	service   usecase.RentalUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestRentalService(t *testing.T) rentalServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewRentalService(txManager, newTestConfig(), newDiscardLogger())

	return rentalServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

// onExecute wires the transaction manager mock to run the callback against a
// factory configured by setup, propagating the callback's error.
func (f *rentalServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

func TestRentalService_StartRental_Success(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	userID := uuid.New()
	bookID := uuid.New()
	book := &entity.Book{ID: bookID, Title: "The Go Programming Language"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookRepo := mockRepo.NewMockBookRepository(t)
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		factory.EXPECT().BookRepo().Return(mockBookRepo)
		factory.EXPECT().RentalRepo().Return(mockRentalRepo)

		mockBookRepo.EXPECT().FindByID(ctx, bookID).Return(book, nil)
		mockRentalRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Rental")).
			Run(func(ctx context.Context, rental *entity.Rental) {
				rental.ID = uuid.New()
			}).
			Return(nil)
	})

	rental, err := fx.service.StartRental(ctx, userID, bookID)

	require.NoError(t, err)
	assert.Equal(t, bookID, rental.BookID)
	assert.Equal(t, userID, rental.UserID)
	assert.Nil(t, rental.ReturnDate)
	assert.True(t, rental.Active())

	// The deadline follows the configured seven day loan period.
	wantDeadline := rental.RentalDate.Add(7 * 24 * time.Hour)
	assert.Equal(t, wantDeadline, rental.ReturnDeadline)
}

func TestRentalService_StartRental_BookNotFound(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	bookID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookRepo := mockRepo.NewMockBookRepository(t)
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		factory.EXPECT().BookRepo().Return(mockBookRepo)
		factory.EXPECT().RentalRepo().Return(mockRentalRepo)

		mockBookRepo.EXPECT().FindByID(ctx, bookID).Return(nil, repository.ErrBookNotFound)
	})

	_, err := fx.service.StartRental(ctx, uuid.New(), bookID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestRentalService_StartRental_AlreadyRented(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	bookID := uuid.New()
	book := &entity.Book{ID: bookID}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookRepo := mockRepo.NewMockBookRepository(t)
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		factory.EXPECT().BookRepo().Return(mockBookRepo)
		factory.EXPECT().RentalRepo().Return(mockRentalRepo)

		mockBookRepo.EXPECT().FindByID(ctx, bookID).Return(book, nil)
		mockRentalRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Rental")).
			Return(domainerrors.ErrBookAlreadyRented.WrapMessage("book already has an active rental"))
	})

	_, err := fx.service.StartRental(ctx, uuid.New(), bookID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookAlreadyRented))
}

func TestRentalService_ReturnRental_Success(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	userID := uuid.New()
	rentalID := uuid.New()
	rental := &entity.Rental{
		ID:         rentalID,
		BookID:     uuid.New(),
		UserID:     userID,
		RentalDate: time.Now().Add(-48 * time.Hour),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		factory.EXPECT().RentalRepo().Return(mockRentalRepo)

		mockRentalRepo.EXPECT().FindByID(ctx, rentalID).Return(rental, nil)
		mockRentalRepo.EXPECT().MarkReturned(ctx, rentalID, mock.AnythingOfType("time.Time")).Return(nil)
	})

	returned, err := fx.service.ReturnRental(ctx, userID, rentalID)

	require.NoError(t, err)
	require.NotNil(t, returned.ReturnDate)
	assert.False(t, returned.Active())
}

func TestRentalService_ReturnRental_NotFound(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	rentalID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		factory.EXPECT().RentalRepo().Return(mockRentalRepo)

		mockRentalRepo.EXPECT().FindByID(ctx, rentalID).Return(nil, repository.ErrRentalNotFound)
	})

	_, err := fx.service.ReturnRental(ctx, uuid.New(), rentalID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRentalNotFound))
}

func TestRentalService_ReturnRental_NotOwned(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	rentalID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()
	rental := &entity.Rental{ID: rentalID, UserID: owner, BookID: uuid.New()}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		factory.EXPECT().RentalRepo().Return(mockRentalRepo)

		mockRentalRepo.EXPECT().FindByID(ctx, rentalID).Return(rental, nil)
	})

	_, err := fx.service.ReturnRental(ctx, stranger, rentalID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRentalNotOwned))

	// A foreign rental must answer exactly like a missing one.
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrRentalNotFound.HTTPCode(), appErr.HTTPCode())
	assert.Equal(t, domainerrors.ErrRentalNotFound.ErrorCode(), appErr.ErrorCode())
	assert.Equal(t, domainerrors.ErrRentalNotFound.Message(), appErr.Message())
}

func TestRentalService_ReturnRental_AlreadyReturned(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	userID := uuid.New()
	rentalID := uuid.New()
	returnedAt := time.Now().Add(-time.Hour)
	rental := &entity.Rental{ID: rentalID, UserID: userID, ReturnDate: &returnedAt}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		factory.EXPECT().RentalRepo().Return(mockRentalRepo)

		mockRentalRepo.EXPECT().FindByID(ctx, rentalID).Return(rental, nil)
	})

	_, err := fx.service.ReturnRental(ctx, userID, rentalID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRentalAlreadyReturned))
}

func TestRentalService_ReturnRental_LostRace(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	userID := uuid.New()
	rentalID := uuid.New()
	rental := &entity.Rental{ID: rentalID, UserID: userID}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		factory.EXPECT().RentalRepo().Return(mockRentalRepo)

		mockRentalRepo.EXPECT().FindByID(ctx, rentalID).Return(rental, nil)
		mockRentalRepo.EXPECT().
			MarkReturned(ctx, rentalID, mock.AnythingOfType("time.Time")).
			Return(repository.ErrRentalAlreadyReturned)
	})

	_, err := fx.service.ReturnRental(ctx, userID, rentalID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRentalAlreadyReturned))
}

func TestRentalService_ListActiveForUser(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	userID := uuid.New()
	firstBook := uuid.New()
	secondBook := uuid.New()
	rentals := []*entity.Rental{
		{ID: uuid.New(), BookID: firstBook, UserID: userID, RentalDate: time.Now().Add(-72 * time.Hour)},
		{ID: uuid.New(), BookID: secondBook, UserID: userID, RentalDate: time.Now().Add(-24 * time.Hour)},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		mockBookRepo := mockRepo.NewMockBookRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RentalRepo().Return(mockRentalRepo)
		factory.EXPECT().BookRepo().Return(mockBookRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		mockRentalRepo.EXPECT().ListForUser(ctx, userID, true).Return(rentals, nil)
		mockBookRepo.EXPECT().FindByID(ctx, firstBook).Return(&entity.Book{ID: firstBook, Title: "First"}, nil)
		mockBookRepo.EXPECT().FindByID(ctx, secondBook).Return(&entity.Book{ID: secondBook, Title: "Second"}, nil)
	})

	result, err := fx.service.ListActiveForUser(ctx, userID)

	require.NoError(t, err)
	require.Len(t, result, 2)

	// The repository orders by rental date ascending; the service must not
	// reshuffle.
	assert.Equal(t, "First", result[0].BookTitle)
	assert.Equal(t, "Second", result[1].BookTitle)
	assert.True(t, result[0].Rental.RentalDate.Before(result[1].Rental.RentalDate))
}

func TestRentalService_ListHistoryForUser_Empty(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		mockBookRepo := mockRepo.NewMockBookRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RentalRepo().Return(mockRentalRepo)
		factory.EXPECT().BookRepo().Return(mockBookRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		mockRentalRepo.EXPECT().ListForUser(ctx, userID, false).Return(nil, nil)
	})

	result, err := fx.service.ListHistoryForUser(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, result)
}

// An unknown user must surface as a not-found, not as an empty rental list;
// the admin per-user view reports a missing user on this error.
func TestRentalService_ListActiveForUser_UserNotFound(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		mockBookRepo := mockRepo.NewMockBookRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RentalRepo().Return(mockRentalRepo)
		factory.EXPECT().BookRepo().Return(mockBookRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	result, err := fx.service.ListActiveForUser(ctx, userID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	assert.Nil(t, result)
}

func TestRentalService_ListAllActive(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	actives := []*entity.ActiveRental{
		{RentalID: uuid.New(), UserName: "Alice", BookTitle: "First"},
		{RentalID: uuid.New(), UserName: "Bob", BookTitle: "Second"},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		factory.EXPECT().RentalRepo().Return(mockRentalRepo)

		mockRentalRepo.EXPECT().ListAllActive(ctx).Return(actives, nil)
	})

	result, err := fx.service.ListAllActive(ctx)

	require.NoError(t, err)
	assert.Equal(t, actives, result)
}
