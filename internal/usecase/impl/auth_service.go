// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"userapi/config"
	deliverycontext "userapi/internal/delivery/context"
	domainerrors "userapi/internal/domain/errors"
	"userapi/internal/domain/repository"
	"userapi/internal/domain/service"
	"userapi/internal/errors"
	"userapi/internal/usecase"

	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	credentials repository.CredentialRepository
	hasher      service.PasswordHasher
	codec       service.TokenCodec
	secret      []byte
	tokenTTL    time.Duration
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Credentials repository.CredentialRepository
	Hasher      service.PasswordHasher
	Codec       service.TokenCodec
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. The signing secret and
// token lifetime are copied out of the config once and never change afterwards.
func NewAuthService(params AuthServiceParams) (usecase.AuthUsecase, error) {
	if params.Config == nil || params.Config.SecretKey.Access == "" {
		return nil, errors.New("token signing secret must be provided")
	}

	return &authService{
		credentials: params.Credentials,
		hasher:      params.Hasher,
		codec:       params.Codec,
		secret:      []byte(params.Config.SecretKey.Access),
		tokenTTL:    params.Config.TokenTTL(),
		logger:      params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login orchestrates the user login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	// 1. Look up the stored credential.
	credential, err := srv.credentials.FindCredentialByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrCredentialNotFound) {
			srv.log(ctx).Info("Login rejected: unknown email", slog.String("email", input.Email))

			return nil, domainerrors.ErrUserNotFound
		}

		srv.log(ctx).Error("Login failed: credential lookup", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrVerifyingUser.WithCause(err)
	}

	// 2. Check the password on the hashing pool.
	ok, err := srv.hasher.Verify(ctx, input.Password, credential.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Login failed: password verification", slog.Any("userID", credential.UserID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.AsAppError(err), "verify password")
	}
	if !ok {
		srv.log(ctx).Info("Login rejected: incorrect password", slog.Any("userID", credential.UserID))

		return nil, domainerrors.ErrIncorrectPassword
	}

	// 3. Issue the session token.
	claims := service.NewClaims(credential.UserID.String(), credential.Email)
	token, err := srv.codec.Encode(claims, srv.secret, srv.tokenTTL)
	if err != nil {
		srv.log(ctx).Error("Login failed: token signing", slog.Any("userID", credential.UserID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.AsAppError(err), "issue token")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", credential.UserID))

	return &usecase.LoginOutput{Token: token}, nil
}
