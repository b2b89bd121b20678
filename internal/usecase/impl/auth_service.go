// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "libris/internal/delivery/context"
	"libris/internal/domain/entity"
	domainerrors "libris/internal/domain/errors"
	"libris/internal/domain/repository"
	"libris/internal/domain/service"
	"libris/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	codec     service.SessionCodec
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	codec service.SessionCodec,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		txManager: txManager,
		hasher:    hasher,
		codec:     codec,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Principal, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	// Derive the credential before opening the transaction; the KDF is
	// deliberately expensive and must not hold a connection while it runs.
	salt, err := srv.hasher.GenerateSalt()
	if err != nil {
		srv.log(ctx).Error("Failed to generate salt during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to generate salt")
	}

	hash, err := srv.hasher.DeriveHash(input.Password, salt)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to derive password hash")
	}

	var registeredUser *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Check whether the email is already registered. The unique
		// constraint on users.email backstops this check under races.
		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailTaken.WrapMessage("registration failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		// 2. Create the account with the freshly salted credential.
		newUser := &entity.User{
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: hash,
			Salt:         salt,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.WithStack(err)
		}
		registeredUser = newUser

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.String("error", err.Error()))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}
	srv.log(ctx).Debug("Account registered", slog.Any("userID", registeredUser.ID))

	return entity.NewPrincipal(registeredUser), nil
}

// Login verifies the credentials and mints a session token on success.
// Unknown email and wrong password take the same failure path so the caller
// cannot tell which one happened.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(err, "failed to find user by email")
		}
		user = found

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.String("error", err.Error()))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	// Check password outside transaction (the KDF is CPU- and memory-bound
	// and must not hold a pooled connection while it runs).
	if !srv.hasher.Verify(input.Password, user.Salt, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	principal := entity.NewPrincipal(user)

	token, err := srv.codec.Encode(principal)
	if err != nil {
		srv.log(ctx).Error("Failed to mint session token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to encode session token")
	}
	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", principal.ID))

	return &usecase.LoginOutput{Principal: principal, Token: token}, nil
}
