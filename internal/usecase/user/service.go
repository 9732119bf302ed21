package user

import (
	"context"
	"errors"
	"fmt"

	"job-bridge/internal/domain/user"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrInternal = errors.New("internal error")
)

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) GetByID(ctx context.Context, id int64) (user.User, error) {
	usr, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return sanitizeUser(usr), nil
}

// List returns every account, newest first, without password hashes.
func (s *Service) List(ctx context.Context) ([]user.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	for i := range users {
		users[i] = sanitizeUser(users[i])
	}
	return users, nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
