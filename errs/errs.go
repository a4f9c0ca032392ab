package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel values for the failure classes handlers recover from locally.
var (
	ErrValidation    = errors.New("required field is missing or blank")
	ErrAlreadyExists = errors.New("already exists")
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConfigMissing = errors.New("required reference data is missing")
)

// Sentinels for faults that are not recovered inside handlers.
var (
	ErrDatabaseQuery      = errors.New("database query failed")
	ErrDatabaseConnection = errors.New("database connection failed")
	ErrInvalidToken       = errors.New("invalid access token")
	ErrMissingToken       = errors.New("missing access token")
	ErrInsufficientRole   = errors.New("insufficient role")
)

var Unauthorized = &ApiErr{StatusCode: http.StatusUnauthorized, err: ErrUnauthorized}

type ApiErr struct {
	StatusCode int
	err        error
	Details    string
	Field      string
	Cause      error
}

func NewApiErr(statusCode int, message string) *ApiErr {
	return &ApiErr{StatusCode: statusCode, err: errors.New(message)}
}

func (e *ApiErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

// Unwrap lets errors.Is match an ApiErr against the sentinel it wraps.
func (e *ApiErr) Unwrap() error {
	return e.err
}

func BadRequest(message string) *ApiErr {
	return NewApiErr(http.StatusBadRequest, message)
}

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

func NewAlreadyExists(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusConflict,
		err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
	}
}

func NewConfigError(resource string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrConfigMissing,
		Details:    resource,
	}
}

func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingToken,
		Field:      "authorization",
	}
}

func NewInvalidTokenError(cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidToken,
		Field:      "authorization",
		Cause:      cause,
	}
}

func NewInsufficientRoleError(requiredRole string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        ErrInsufficientRole,
		Details:    fmt.Sprintf("required role: %s", requiredRole),
		Field:      "authorization",
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
