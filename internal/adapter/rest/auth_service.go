package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/session"
	"github.com/hqv2816/storefront-api/internal/usecase"
)

// AuthService delegates credential checks and token issuance to the
// upstream backend's /login and /me endpoints.
type AuthService struct{ c *Client }

func NewAuthService(c *Client) *AuthService { return &AuthService{c: c} }

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	Token string `json:"token"`
}

func (s *AuthService) Verify(ctx context.Context, user *domain.User, password domain.Password) (string, error) {
	var resp loginResp
	req := loginReq{Email: user.Email.String(), Password: string(password)}
	err := s.c.do(ctx, http.MethodPost, "/login", nil, req, &resp)
	if err != nil {
		if isStatus(err, http.StatusUnauthorized) {
			return "", fmt.Errorf("%w for %s", domain.ErrInvalidCredentials, user.Email)
		}
		return "", err
	}
	return resp.Token, nil
}

func (s *AuthService) Identify(ctx context.Context, token string) (*domain.User, error) {
	// /me authenticates with the token under inspection, not the caller's.
	ctx = session.WithSession(ctx, session.Session{Token: token})
	var dto userDTO
	err := s.c.do(ctx, http.MethodGet, "/me", nil, nil, &dto)
	if err != nil {
		if isStatus(err, http.StatusUnauthorized) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	return dto.toDomain()
}

var _ usecase.AuthService = (*AuthService)(nil)
