package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"job-bridge/internal/domain/user"
)

var (
	ErrAccountExists      = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
)

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

type LoginInput struct {
	Username string
	Password string
	Role     string
}

// InputError explains which field failed validation and matches
// ErrInvalidInput.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Unwrap() error { return ErrInvalidInput }

type Service struct {
	users user.Repository
	cost  int
}

func NewService(users user.Repository) *Service {
	return &Service{users: users, cost: bcrypt.DefaultCost}
}

// WithCost lowers the bcrypt cost, for tests.
func (s *Service) WithCost(cost int) *Service {
	s.cost = cost
	return s
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (user.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return user.User{}, &InputError{Message: "username is required"}
	}
	email := normalizeEmail(in.Email)
	if email == "" {
		return user.User{}, &InputError{Message: "email is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return user.User{}, &InputError{Message: "email is invalid"}
	}
	if !isValidPassword(in.Password) {
		return user.User{}, &InputError{Message: "password must be at least 8 characters"}
	}
	role, ok := user.ParseRole(in.Role)
	if !ok {
		return user.User{}, &InputError{Message: "user type must be jobseeker or employer"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	created, err := s.users.CreateUser(ctx, user.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, user.ErrConflict) {
			return user.User{}, fmt.Errorf("%w: %w", ErrAccountExists, err)
		}
		return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return sanitizeUser(created), nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (user.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return user.User{}, ErrInvalidCredentials
	}
	role, ok := user.ParseRole(in.Role)
	if !ok {
		return user.User{}, ErrInvalidCredentials
	}

	u, err := s.users.GetUserByUsername(ctx, username, role)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrInvalidCredentials
		}
		return user.User{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, ErrInvalidCredentials
	}

	return sanitizeUser(u), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
