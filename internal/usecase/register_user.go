package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hqv2816/storefront-api/internal/domain"
)

type RegisterUserInput struct {
	Email    string
	Name     string
	Password string
}

// RegisterUser creates a customer account. Admin accounts are provisioned
// out of band, never through the public endpoint.
type RegisterUser struct {
	users UserRepo
}

func NewRegisterUser(users UserRepo) *RegisterUser {
	return &RegisterUser{users: users}
}

func (uc *RegisterUser) Execute(ctx context.Context, in RegisterUserInput) (*domain.User, error) {
	email, err := domain.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	password, err := domain.NewPassword(in.Password)
	if err != nil {
		return nil, err
	}

	switch _, err := uc.users.FindByEmail(ctx, email); {
	case err == nil:
		return nil, domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, err
	}

	user := domain.NewUser(uuid.NewString(), email, in.Name, domain.RoleCustomer)
	if err := uc.users.Create(ctx, user, password); err != nil {
		return nil, err
	}
	return user, nil
}
