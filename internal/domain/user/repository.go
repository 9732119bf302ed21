package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrConflict = errors.New("username or email already exists")
)

// ConflictError names the unique field a write collided with. Field is
// empty when the store cannot tell.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return ErrConflict.Error()
	}
	return e.Field + " already exists"
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

type Repository interface {
	CreateUser(ctx context.Context, u User) (User, error)
	GetUserByID(ctx context.Context, id int64) (User, error)
	GetUserByUsername(ctx context.Context, username string, role Role) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
}
