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

// bookServiceFixtures holds all test dependencies for book service tests.
type bookServiceFixtures struct {
	t         *testing.T
	service   usecase.BookUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestBookService(t *testing.T) bookServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewBookService(txManager, newTestConfig(), newDiscardLogger())

	return bookServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
	}
}

// onExecute wires the transaction manager mock to run the callback against a
// factory configured by setup, propagating the callback's error.
func (f *bookServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

func TestBookService_ListBooks_Success(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	summaries := []*entity.BookSummary{
		{ID: uuid.New(), Title: "First", Rented: true},
		{ID: uuid.New(), Title: "Second", Rented: false},
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookRepo := mockRepo.NewMockBookRepository(t)
		factory.EXPECT().BookRepo().Return(mockBookRepo)

		mockBookRepo.EXPECT().Count(ctx).Return(int64(25), nil)
		mockBookRepo.EXPECT().ListSummaries(ctx, 10, 10).Return(summaries, nil)
	})

	output, err := fx.service.ListBooks(ctx, 2)

	require.NoError(t, err)
	assert.Equal(t, 2, output.Page)
	assert.Equal(t, 3, output.MaxPage)
	assert.Equal(t, summaries, output.Books)
}

func TestBookService_ListBooks_EmptyCatalogFirstPage(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookRepo := mockRepo.NewMockBookRepository(t)
		factory.EXPECT().BookRepo().Return(mockBookRepo)

		mockBookRepo.EXPECT().Count(ctx).Return(int64(0), nil)
		mockBookRepo.EXPECT().ListSummaries(ctx, 0, 10).Return(nil, nil)
	})

	output, err := fx.service.ListBooks(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 1, output.MaxPage)
	assert.Empty(t, output.Books)
}

func TestBookService_ListBooks_PageBeyondEnd(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookRepo := mockRepo.NewMockBookRepository(t)
		factory.EXPECT().BookRepo().Return(mockBookRepo)

		mockBookRepo.EXPECT().Count(ctx).Return(int64(25), nil)
	})

	_, err := fx.service.ListBooks(ctx, 4)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPageNotFound))
}

func TestBookService_ListBooks_InvalidPage(t *testing.T) {
	fx := createTestBookService(t)

	_, err := fx.service.ListBooks(context.Background(), 0)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPageNotFound))
}

func TestBookService_GetBookDetail_Available(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	bookID := uuid.New()
	book := &entity.Book{ID: bookID, Title: "The Go Programming Language"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookRepo := mockRepo.NewMockBookRepository(t)
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().BookRepo().Return(mockBookRepo)
		factory.EXPECT().RentalRepo().Return(mockRentalRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockBookRepo.EXPECT().FindByID(ctx, bookID).Return(book, nil)
		mockRentalRepo.EXPECT().FindActiveForBook(ctx, bookID).Return(nil, repository.ErrNoActiveRental)
	})

	output, err := fx.service.GetBookDetail(ctx, bookID)

	require.NoError(t, err)
	assert.Equal(t, book, output.Book)
	assert.Nil(t, output.RentalInfo)
}

func TestBookService_GetBookDetail_Rented(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	bookID := uuid.New()
	renterID := uuid.New()
	book := &entity.Book{ID: bookID, Title: "The Go Programming Language"}
	rental := &entity.Rental{
		ID:             uuid.New(),
		BookID:         bookID,
		UserID:         renterID,
		RentalDate:     time.Now().Add(-24 * time.Hour),
		ReturnDeadline: time.Now().Add(6 * 24 * time.Hour),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookRepo := mockRepo.NewMockBookRepository(t)
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().BookRepo().Return(mockBookRepo)
		factory.EXPECT().RentalRepo().Return(mockRentalRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockBookRepo.EXPECT().FindByID(ctx, bookID).Return(book, nil)
		mockRentalRepo.EXPECT().FindActiveForBook(ctx, bookID).Return(rental, nil)
		mockUserRepo.EXPECT().FindByID(ctx, renterID).Return(&entity.User{ID: renterID, Name: "Alice"}, nil)
	})

	output, err := fx.service.GetBookDetail(ctx, bookID)

	require.NoError(t, err)
	require.NotNil(t, output.RentalInfo)
	assert.Equal(t, "Alice", output.RentalInfo.UserName)
	assert.Equal(t, rental.RentalDate, output.RentalInfo.RentalDate)
	assert.Equal(t, rental.ReturnDeadline, output.RentalInfo.ReturnDeadline)
}

func TestBookService_GetBookDetail_NotFound(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	bookID := uuid.New()

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookRepo := mockRepo.NewMockBookRepository(t)
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().BookRepo().Return(mockBookRepo)
		factory.EXPECT().RentalRepo().Return(mockRentalRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockBookRepo.EXPECT().FindByID(ctx, bookID).Return(nil, repository.ErrBookNotFound)
	})

	_, err := fx.service.GetBookDetail(ctx, bookID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestBookService_CreateBook_Success(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	input := &usecase.CreateBookInput{
		ISBN13:      9780134190440,
		Title:       "The Go Programming Language",
		Author:      "Alan A. A. Donovan",
		PublishDate: time.Date(2015, 10, 26, 0, 0, 0, 0, time.UTC),
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookRepo := mockRepo.NewMockBookRepository(t)
		factory.EXPECT().BookRepo().Return(mockBookRepo)

		mockBookRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Book")).
			Run(func(ctx context.Context, book *entity.Book) {
				book.ID = uuid.New()
			}).
			Return(nil)
	})

	book, err := fx.service.CreateBook(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, book.ID)
	assert.Equal(t, input.Title, book.Title)
	assert.Equal(t, input.ISBN13, book.ISBN13)
}

func TestBookService_UpdateBook_NotFound(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	input := &usecase.UpdateBookInput{
		ID:    uuid.New(),
		Title: "Renamed",
	}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookRepo := mockRepo.NewMockBookRepository(t)
		factory.EXPECT().BookRepo().Return(mockBookRepo)

		mockBookRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Book")).Return(repository.ErrBookNotFound)
	})

	_, err := fx.service.UpdateBook(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrBookNotFound))
}

func TestBookService_UpdateBook_Success(t *testing.T) {
	fx := createTestBookService(t)

	ctx := context.Background()
	bookID := uuid.New()
	input := &usecase.UpdateBookInput{
		ID:          bookID,
		ISBN13:      9780134190440,
		Title:       "Renamed",
		Author:      "Someone",
		PublishDate: time.Date(2015, 10, 26, 0, 0, 0, 0, time.UTC),
	}
	fresh := &entity.Book{ID: bookID, Title: "Renamed", Author: "Someone", ISBN13: input.ISBN13, PublishDate: input.PublishDate}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockBookRepo := mockRepo.NewMockBookRepository(t)
		factory.EXPECT().BookRepo().Return(mockBookRepo)

		mockBookRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Book")).Return(nil)
		mockBookRepo.EXPECT().FindByID(ctx, bookID).Return(fresh, nil)
	})

	book, err := fx.service.UpdateBook(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, fresh, book)
}
