package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInternal            = errors.New("internal error")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	ErrNotFound           = errors.New("not found")
	ErrNotFoundOrInactive = errors.New("job posting not found or not active")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrAlreadyApplied     = errors.New("already applied to this job")
)

// ValidationError carries a client-facing message and matches ErrValidation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// internalErr keeps the underlying cause in the message for the server log
// while still matching ErrInternal.
func internalErr(err error) error {
	if err == nil {
		return ErrInternal
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
