package usecase

import (
	"context"

	"github.com/hqv2816/storefront-api/internal/domain"
)

type AuthenticateUserInput struct {
	Email    string
	Password string
}

type AuthenticateUserOutput struct {
	Token string
	User  *domain.User
}

// AuthenticateUser resolves the user by email and delegates the credential
// check and token issuance to the auth service. An unknown email fails
// before the auth service is ever invoked.
type AuthenticateUser struct {
	users UserRepo
	auth  AuthService
}

func NewAuthenticateUser(users UserRepo, auth AuthService) *AuthenticateUser {
	return &AuthenticateUser{users: users, auth: auth}
}

func (uc *AuthenticateUser) Execute(ctx context.Context, in AuthenticateUserInput) (AuthenticateUserOutput, error) {
	email, err := domain.NewEmail(in.Email)
	if err != nil {
		return AuthenticateUserOutput{}, err
	}
	password, err := domain.NewPassword(in.Password)
	if err != nil {
		return AuthenticateUserOutput{}, err
	}

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return AuthenticateUserOutput{}, err
	}

	token, err := uc.auth.Verify(ctx, user, password)
	if err != nil {
		return AuthenticateUserOutput{}, err
	}
	return AuthenticateUserOutput{Token: token, User: user}, nil
}
