package impl

import (
	"context"
	"testing"

	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	mockRepo "libris/internal/mocks/repository"
	mockService "libris/internal/mocks/service"
	"libris/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	t         *testing.T
	service   usecase.AuthUsecase
	txManager *mockRepo.MockTransactionManager
	hasher    *mockService.MockPasswordHasher
	codec     *mockService.MockSessionCodec
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	codec := mockService.NewMockSessionCodec(t)
	service := NewAuthService(txManager, hasher, codec, newDiscardLogger())

	return authServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		hasher:    hasher,
		codec:     codec,
	}
}

// onExecute wires the transaction manager mock to run the callback against a
// factory configured by setup, propagating the callback's error.
func (f *authServiceFixtures) onExecute(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			return fn(factory)
		})
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "correct horse battery staple",
	}
	salt := []byte("salt")
	hash := []byte("hash")

	fx.hasher.EXPECT().GenerateSalt().Return(salt, nil)
	fx.hasher.EXPECT().DeriveHash(input.Password, salt).Return(hash, nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = uuid.New()
			}).
			Return(nil)
	})

	principal, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "Alice", principal.Name)
	assert.False(t, principal.IsAdmin)
	assert.NotEqual(t, uuid.Nil, principal.ID)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "taken@example.com",
		Name:     "Bob",
		Password: "hunter22hunter22",
	}

	fx.hasher.EXPECT().GenerateSalt().Return([]byte("salt"), nil)
	fx.hasher.EXPECT().DeriveHash(input.Password, []byte("salt")).Return([]byte("hash"), nil)

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: uuid.New()}, nil)
	})

	_, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailTaken))
}

func TestAuthService_Register_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "alice@example.com",
		Name:     "Alice",
		Password: "pw",
	}

	fx.hasher.EXPECT().GenerateSalt().Return([]byte("salt"), nil)
	fx.hasher.EXPECT().DeriveHash(input.Password, []byte("salt")).Return(nil, errors.New("kdf failed"))

	_, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: []byte("hash"),
		Salt:         []byte("salt"),
		IsAdmin:      true,
	}
	input := &usecase.LoginInput{Email: user.Email, Password: "correct horse battery staple"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	})
	fx.hasher.EXPECT().Verify(input.Password, user.Salt, user.PasswordHash).Return(true)
	fx.codec.EXPECT().
		Encode(&entity.Principal{ID: userID, Name: "Alice", IsAdmin: true}).
		Return("signed-token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, userID, output.Principal.ID)
	assert.True(t, output.Principal.IsAdmin)
}

// The credential check is deliberately expensive, so it must only run once
// the lookup transaction has completed and released its connection.
func TestAuthService_Login_VerifiesAfterTransaction(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: []byte("hash"),
		Salt:         []byte("salt"),
	}
	input := &usecase.LoginInput{Email: user.Email, Password: "correct horse battery staple"}

	txDone := false
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			factory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)

			err := fn(factory)
			txDone = true

			return err
		})
	fx.hasher.EXPECT().
		Verify(input.Password, user.Salt, user.PasswordHash).
		Run(func(plaintext string, salt []byte, expected []byte) {
			assert.True(t, txDone, "credential check ran while the lookup transaction was still open")
		}).
		Return(true)
	fx.codec.EXPECT().Encode(mock.AnythingOfType("*entity.Principal")).Return("signed-token", nil)

	_, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever1234"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	})

	_, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: []byte("hash"),
		Salt:         []byte("salt"),
	}
	input := &usecase.LoginInput{Email: user.Email, Password: "wrong password"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	})
	fx.hasher.EXPECT().Verify(input.Password, user.Salt, user.PasswordHash).Return(false)

	_, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// Unknown email and wrong password must surface the same error value, so a
// caller cannot learn which one happened.
func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	ctx := context.Background()

	unknownFx := createTestAuthService(t)
	unknownFx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)
	})
	_, unknownErr := unknownFx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "pw"})

	user := &entity.User{ID: uuid.New(), Email: "alice@example.com", PasswordHash: []byte("hash"), Salt: []byte("salt")}
	wrongFx := createTestAuthService(t)
	wrongFx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	})
	wrongFx.hasher.EXPECT().Verify("pw", user.Salt, user.PasswordHash).Return(false)
	_, wrongErr := wrongFx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "pw"})

	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.True(t, errors.Is(unknownErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongErr, domainerrors.ErrInvalidCredentials))

	var unknownApp, wrongApp domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(wrongErr, &wrongApp))
	assert.Equal(t, unknownApp.ErrorCode(), wrongApp.ErrorCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
	assert.Equal(t, unknownApp.HTTPCode(), wrongApp.HTTPCode())
}

func TestAuthService_Login_EncodeFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		Name:         "Alice",
		PasswordHash: []byte("hash"),
		Salt:         []byte("salt"),
	}
	input := &usecase.LoginInput{Email: user.Email, Password: "correct horse battery staple"}

	fx.onExecute(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	})
	fx.hasher.EXPECT().Verify(input.Password, user.Salt, user.PasswordHash).Return(true)
	fx.codec.EXPECT().Encode(mock.AnythingOfType("*entity.Principal")).Return("", errors.New("signing failed"))

	_, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode session token")
}
