package errors

import (
	"fmt"
	"io"
	"maps"
	"net/http"

	"userapi/internal/errors"
)

// Kind classifies an AppError into one of the application's failure families.
type Kind string

const (
	KindValidation     Kind = "ValidationError"
	KindAuthentication Kind = "AuthenticationError"
	KindNotFound       Kind = "NotFoundError"
	KindConflict       Kind = "ConflictError"
	KindInternal       Kind = "InternalError"
)

const (
	defaultHTTPCode = http.StatusInternalServerError
	defaultMessage  = "Internal Server Error"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind              // Failure family
	HTTPCode() int           // HTTP status code
	ErrorCode() string       // Business error code
	Message() string         // User-friendly error message
	Details() map[string]any // Structured, client-safe details (never nil)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   map[string]any
}

// New builds an AppError from a status code, message and details, applying the
// defaults 500 / "Internal Server Error" / {} for zero values.
func New(httpCode int, message string, details map[string]any) *BaseError {
	if httpCode == 0 {
		httpCode = defaultHTTPCode
	}
	if message == "" {
		message = defaultMessage
	}

	return &BaseError{
		kind:      kindForStatus(httpCode),
		httpCode:  httpCode,
		errorCode: http.StatusText(httpCode),
		message:   message,
		details:   maps.Clone(details),
	}
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message string) *BaseError {
	e := New(httpCode, message, nil)
	e.kind = kind
	e.errorCode = errorCode

	return e
}

func kindForStatus(code int) Kind {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return KindAuthentication
	case code == http.StatusNotFound:
		return KindNotFound
	case code == http.StatusConflict:
		return KindConflict
	case code >= 400 && code < 500:
		return KindValidation
	default:
		return KindInternal
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches errors of the same kind and business code, so copies made by
// WithDetails or WithCause still compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.kind == t.kind && e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the failure family
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns a copy of the structured details; an empty map when none were set.
func (e *BaseError) Details() map[string]any {
	if len(e.details) == 0 {
		return map[string]any{}
	}

	return maps.Clone(e.details)
}

// WithDetails returns a copy of the error carrying the given details.
func (e *BaseError) WithDetails(details map[string]any) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   maps.Clone(details),
	}
}

// WithCause attaches the underlying fault. The cause is visible to errors.Is/As
// and to server-side logging, but never reaches the rendered response.
func (e *BaseError) WithCause(cause error) AppError {
	if cause == nil {
		return e
	}

	return &causedError{BaseError: e, cause: cause}
}

type causedError struct {
	*BaseError
	cause error
}

func (e *causedError) Error() string {
	return e.message + ": " + e.cause.Error()
}

func (e *causedError) Unwrap() error {
	return e.cause
}

// Format prints the cause chain with stack traces for %+v.
func (e *causedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		_, _ = fmt.Fprintf(s, "%s: %+v", e.message, e.cause)

		return
	}

	_, _ = io.WriteString(s, e.Error())
}

// AsAppError classifies err. Errors that carry no AppError are reported as
// ErrInternal with err attached as the cause.
func AsAppError(err error) AppError {
	if err == nil {
		return nil
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return ErrInternal.WithCause(err)
}

// IsKind reports whether err classifies as the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr AppError
	if !errors.As(err, &appErr) {
		return false
	}

	return appErr.Kind() == kind
}

// Predefined error types
var (
	// Authentication-related errors
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
	)

	ErrIncorrectPassword = NewBaseError(
		KindAuthentication,
		http.StatusUnauthorized,
		"INCORRECT_PASSWORD",
		"Incorrect password",
	)

	ErrVerifyingUser = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"USER_VERIFICATION_FAILED",
		"Error verifying user",
	)

	ErrTokenNotProvided = NewBaseError(
		KindAuthentication,
		http.StatusForbidden,
		"TOKEN_NOT_PROVIDED",
		"Authentication token not provided",
	)

	ErrInvalidToken = NewBaseError(
		KindAuthentication,
		http.StatusForbidden,
		"INVALID_TOKEN",
		"Invalid token",
	)

	ErrTokenExpired = NewBaseError(
		KindAuthentication,
		http.StatusForbidden,
		"TOKEN_EXPIRED",
		"Token expired",
	)

	ErrTokenSigningFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"TOKEN_SIGNING_FAILED",
		"Error issuing token",
	)

	ErrPasswordHashFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Error processing password",
	)

	// User-related errors
	ErrUserAlreadyExists = NewBaseError(
		KindConflict,
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"Email already registered",
	)

	ErrUserCreationFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"Error creating user",
	)

	ErrUserListFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"USER_LIST_FAILED",
		"Error getting users",
	)

	ErrUserLookupFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"USER_LOOKUP_FAILED",
		"Error getting user",
	)

	ErrUserUpdateFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Error updating user",
	)

	ErrUserDeletionFailed = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"USER_DELETION_FAILED",
		"Error deleting user",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Validation failed",
	)

	// General errors
	ErrInternal = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		defaultMessage,
	)
)
