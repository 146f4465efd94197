package impl

import (
	"context"
	"log/slog"

	deliverycontext "userapi/internal/delivery/context"
	"userapi/internal/domain/entity"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/repository"
	"userapi/internal/domain/service"
	"userapi/internal/errors"
	"userapi/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// hashPassword classifies hasher failures. Rejected input is the caller's fault
// and is not logged as a server error.
func (srv *userService) hashPassword(ctx context.Context, password string) (string, error) {
	hashed, err := srv.hasher.Hash(ctx, password)
	if err != nil {
		appErr := domainerrors.AsAppError(err)
		if appErr.Kind() == domainerrors.KindInternal {
			srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))
		}

		return "", errors.Wrap(appErr, "hash password")
	}

	return hashed, nil
}

// CreateUser hashes the password and stores a new user.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*usecase.UserOutput, error) {
	hashed, err := srv.hashPassword(ctx, input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		srv.log(ctx).Error("Failed to create user", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrUserCreationFailed.WithCause(err)
	}

	srv.log(ctx).Debug("User created", slog.Any("userID", user.ID))

	return usecase.NewUserOutput(user), nil
}

// GetUser returns a single user.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*usecase.UserOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		srv.log(ctx).Error("Failed to get user", slog.Any("userID", id), slog.Any("error", err))

		return nil, domainerrors.ErrUserLookupFailed.WithCause(err)
	}

	return usecase.NewUserOutput(user), nil
}

// ListUsers returns every user.
func (srv *userService) ListUsers(ctx context.Context) ([]*usecase.UserOutput, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, domainerrors.ErrUserListFailed.WithCause(err)
	}

	outputs := make([]*usecase.UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, usecase.NewUserOutput(user))
	}

	return outputs, nil
}

// UpdateUser replaces name, email and password of an existing user.
func (srv *userService) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) (*usecase.UserOutput, error) {
	hashed, err := srv.hashPassword(ctx, input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           input.ID,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrUserNotFound
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, domainerrors.ErrUserAlreadyExists
		}

		srv.log(ctx).Error("Failed to update user", slog.Any("userID", input.ID), slog.Any("error", err))

		return nil, domainerrors.ErrUserUpdateFailed.WithCause(err)
	}

	return usecase.NewUserOutput(user), nil
}

// DeleteUser removes a user.
func (srv *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		srv.log(ctx).Error("Failed to delete user", slog.Any("userID", id), slog.Any("error", err))

		return domainerrors.ErrUserDeletionFailed.WithCause(err)
	}

	srv.log(ctx).Debug("User deleted", slog.Any("userID", id))

	return nil
}
