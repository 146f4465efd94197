package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"userapi/config"
	apimiddleware "userapi/internal/delivery/api/middleware"
	"userapi/internal/delivery/api/router"
	"userapi/internal/delivery/api/router/handler"
	deliverycontext "userapi/internal/delivery/context"
	"userapi/internal/domain/entity"
	"userapi/internal/domain/repository"
	"userapi/internal/domain/service"
	"userapi/internal/infra/auth"
	"userapi/internal/infra/workerpool"
	mockRepo "userapi/internal/mocks/repository"
	"userapi/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "api-test-secret"

type apiFixtures struct {
	server      *echo.Echo
	credentials *mockRepo.MockCredentialRepository
	users       *mockRepo.MockUserRepository
	hasher      service.PasswordHasher
	codec       service.TokenCodec
}

func newAPIFixtures(t *testing.T) apiFixtures {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost, TokenTTL: time.Hour}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	credentials := mockRepo.NewMockCredentialRepository(t)
	users := mockRepo.NewMockUserRepository(t)
	hasher := auth.NewBcryptHasherWithCost(bcrypt.MinCost, workerpool.New(2))
	codec := auth.NewJWTCodec()

	authUsecase, err := impl.NewAuthService(impl.AuthServiceParams{
		Credentials: credentials,
		Hasher:      hasher,
		Codec:       codec,
		Config:      cfg,
		Logger:      logger,
	})
	require.NoError(t, err)

	userUsecase := impl.NewUserService(impl.UserServiceParams{
		UserRepo: users,
		Hasher:   hasher,
		Logger:   logger,
	})

	e := newEcho(cfg, logger, router.RouterParams{
		AuthHandler:    handler.NewAuthHandler(authUsecase),
		UserHandler:    handler.NewUserHandler(userUsecase),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(codec, cfg),
	})

	return apiFixtures{server: e, credentials: credentials, users: users, hasher: hasher, codec: codec}
}

func (fx apiFixtures) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	fx.server.ServeHTTP(rec, req)

	return rec
}

func (fx apiFixtures) storeCredential(t *testing.T, email, password string) *entity.Credential {
	t.Helper()

	hash, err := fx.hasher.Hash(context.Background(), password)
	require.NoError(t, err)

	credential := &entity.Credential{UserID: uuid.New(), Email: email, PasswordHash: hash}
	fx.credentials.EXPECT().FindCredentialByEmail(mock.Anything, email).Return(credential, nil)

	return credential
}

func TestLoginThenProfile(t *testing.T) {
	fx := newAPIFixtures(t)
	credential := fx.storeCredential(t, "a@x.com", "secret1")

	rec := fx.do(http.MethodPost, "/login", `{"email":"a@x.com","password":"secret1"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))

	claims, err := fx.codec.Decode(login.Token, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, credential.UserID.String(), claims.Subject)
	assert.Equal(t, "a@x.com", claims.Email)

	rec = fx.do(http.MethodGet, "/profile", "", map[string]string{echo.HeaderAuthorization: login.Token})
	require.Equal(t, http.StatusOK, rec.Code)

	var profile struct {
		Message string         `json:"message"`
		User    map[string]any `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "User profile", profile.Message)
	assert.Equal(t, credential.UserID.String(), profile.User["sub"])
	assert.Equal(t, "a@x.com", profile.User["email"])
	assert.Contains(t, profile.User, "exp")
	assert.Contains(t, profile.User, "iat")
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T, fx apiFixtures)
		body        string
		wantCode    int
		wantMessage string
	}{
		{
			name: "unknown email",
			setup: func(_ *testing.T, fx apiFixtures) {
				fx.credentials.EXPECT().
					FindCredentialByEmail(mock.Anything, "nobody@x.com").
					Return(nil, repository.ErrCredentialNotFound)
			},
			body:        `{"email":"nobody@x.com","password":"secret1"}`,
			wantCode:    http.StatusNotFound,
			wantMessage: "User not found",
		},
		{
			name: "wrong password",
			setup: func(t *testing.T, fx apiFixtures) {
				fx.storeCredential(t, "a@x.com", "secret1")
			},
			body:        `{"email":"a@x.com","password":"nope"}`,
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Incorrect password",
		},
		{
			name: "store unavailable",
			setup: func(_ *testing.T, fx apiFixtures) {
				fx.credentials.EXPECT().
					FindCredentialByEmail(mock.Anything, "a@x.com").
					Return(nil, io.ErrUnexpectedEOF)
			},
			body:        `{"email":"a@x.com","password":"secret1"}`,
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Error verifying user",
		},
		{
			name:        "missing password",
			setup:       func(*testing.T, apiFixtures) {},
			body:        `{"email":"a@x.com"}`,
			wantCode:    http.StatusBadRequest,
			wantMessage: "Validation failed",
		},
		{
			name:        "malformed json",
			setup:       func(*testing.T, apiFixtures) {},
			body:        `{"email":`,
			wantCode:    http.StatusBadRequest,
			wantMessage: "Validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newAPIFixtures(t)
			tt.setup(t, fx)

			rec := fx.do(http.MethodPost, "/login", tt.body, nil)

			assert.Equal(t, tt.wantCode, rec.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.Contains(t, body, "details")
		})
	}
}

func TestProfile_RequiresToken(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodGet, "/profile", "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Authentication token not provided","details":{}}`, rec.Body.String())

	rec = fx.do(http.MethodGet, "/profile", "", map[string]string{echo.HeaderAuthorization: "not.a.token"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid token","details":{}}`, rec.Body.String())
}

func TestPublicAndHealth(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodGet, "/public", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "This is a public route.", rec.Body.String())

	rec = fx.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodGet, "/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Not Found","details":{}}`, rec.Body.String())
}

func TestRequestIDIsPropagated(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodGet, "/public", "", map[string]string{deliverycontext.HeaderXRequestID: "req-123"})
	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestBodyLimit(t *testing.T) {
	fx := newAPIFixtures(t)

	body := `{"email":"a@x.com","password":"` + strings.Repeat("x", 2048) + `"}`
	rec := fx.do(http.MethodPost, "/login", body, nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestUsersResource(t *testing.T) {
	fx := newAPIFixtures(t)
	id := uuid.New()

	fx.users.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			ok, err := fx.hasher.Verify(context.Background(), "secret1", user.PasswordHash)
			assert.NoError(t, err)
			assert.True(t, ok)
			user.ID = id
		}).
		Return(nil)

	rec := fx.do(http.MethodPost, "/users", `{"name":"Alice","email":"a@x.com","password":"secret1"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"`+id.String()+`","name":"Alice","email":"a@x.com"}`, rec.Body.String())

	fx.users.EXPECT().FindByID(mock.Anything, id).Return(&entity.User{ID: id, Name: "Alice", Email: "a@x.com", PasswordHash: "h"}, nil)

	rec = fx.do(http.MethodGet, "/users/"+id.String(), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	missing := uuid.New()
	fx.users.EXPECT().Delete(mock.Anything, missing).Return(repository.ErrUserNotFound)

	rec = fx.do(http.MethodDelete, "/users/"+missing.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"User not found","details":{}}`, rec.Body.String())

	rec = fx.do(http.MethodGet, "/users/42", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateUser_Validation(t *testing.T) {
	fx := newAPIFixtures(t)

	rec := fx.do(http.MethodPost, "/users", `{"name":"Al","email":"bad","password":"123"}`, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Validation failed", body.Message)
	assert.Equal(t, map[string]string{
		"name":     "must be at least 3 characters",
		"email":    "must be a valid email address",
		"password": "must be at least 6 characters",
	}, body.Details)
}

func TestCreateUser_PasswordTooLong(t *testing.T) {
	fx := newAPIFixtures(t)

	body := `{"name":"Alice","email":"a@x.com","password":"` + strings.Repeat("p", 80) + `"}`
	rec := fx.do(http.MethodPost, "/users", body, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Validation failed","details":{"password":"must be at most 72 bytes"}}`, rec.Body.String())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	fx := newAPIFixtures(t)

	fx.users.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.User")).Return(repository.ErrEmailTaken)

	rec := fx.do(http.MethodPost, "/users", `{"name":"Alice","email":"a@x.com","password":"secret1"}`, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"Email already registered","details":{}}`, rec.Body.String())
}
