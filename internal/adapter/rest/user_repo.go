package rest

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/usecase"
)

type UserRepo struct{ c *Client }

func NewUserRepo(c *Client) *UserRepo { return &UserRepo{c: c} }

func (r *UserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	var dto userDTO
	err := r.c.do(ctx, http.MethodGet, "/users/"+id, nil, nil, &dto)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return dto.toDomain()
}

func (r *UserRepo) FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	q := url.Values{"email": {email.String()}}
	var dto userDTO
	err := r.c.do(ctx, http.MethodGet, "/users", q, nil, &dto)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return dto.toDomain()
}

type createUserReq struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User, password domain.Password) error {
	req := createUserReq{
		Email:    u.Email.String(),
		Name:     u.Name,
		Password: string(password),
		Role:     string(u.Role),
	}
	err := r.c.do(ctx, http.MethodPost, "/users", nil, req, nil)
	if isStatus(err, http.StatusConflict) {
		return domain.ErrEmailTaken
	}
	return err
}

var _ usecase.UserRepo = (*UserRepo)(nil)
