package usecase

import (
	"context"
	"errors"

	"job-bridge/internal/domain/user"
	"job-bridge/internal/pkg/jwt"
	ucauth "job-bridge/internal/usecase/auth"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (user.User, TokenPair, error)
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	authSvc *ucauth.Service
	users   user.Repository
	jwt     jwt.Service
}

func NewAuthUsecase(authSvc *ucauth.Service, users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{authSvc: authSvc, users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (user.User, TokenPair, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	pair, err := u.issue(usr)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	return usr, pair, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, TokenPair, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	pair, err := u.issue(usr)
	if err != nil {
		return user.User{}, TokenPair{}, err
	}
	return usr, pair, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, ErrUnauthorized
	}

	claims, err := u.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}

	usr, err := u.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return TokenPair{}, internalErr(err)
	}

	return u.issue(usr)
}

func (u *Auth) issue(usr user.User) (TokenPair, error) {
	sub := jwt.Subject{UserID: usr.ID, Username: usr.Username, Role: string(usr.Role)}
	access, err := u.jwt.GenerateAccessToken(sub)
	if err != nil {
		return TokenPair{}, internalErr(err)
	}
	refresh, err := u.jwt.GenerateRefreshToken(sub)
	if err != nil {
		return TokenPair{}, internalErr(err)
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
