package usecase

import (
	"context"

	"job-bridge/internal/domain/user"
	ucuser "job-bridge/internal/usecase/user"
)

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]user.User, error)
}

type User struct {
	svc *ucuser.Service
}

func NewUserUsecase(svc *ucuser.Service) *User {
	return &User{svc: svc}
}

func (u *User) ListUsers(ctx context.Context) ([]user.User, error) {
	users, err := u.svc.List(ctx)
	if err != nil {
		return nil, internalErr(err)
	}
	return users, nil
}
