package security

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/usecase"
)

// CredentialSource looks up the stored password hash for a user. The MySQL
// and in-memory user repositories both implement it.
type CredentialSource interface {
	PasswordHash(ctx context.Context, userID string) (string, error)
}

// LocalAuthService is the usecase.AuthService used when the storefront owns
// its user store: bcrypt credential check plus local JWT issuance. When the
// rest driver is active, the upstream backend plays this role instead.
type LocalAuthService struct {
	tokens *TokenService
	creds  CredentialSource
	users  usecase.UserRepo
}

func NewLocalAuthService(tokens *TokenService, creds CredentialSource, users usecase.UserRepo) *LocalAuthService {
	return &LocalAuthService{tokens: tokens, creds: creds, users: users}
}

func (s *LocalAuthService) Verify(ctx context.Context, user *domain.User, password domain.Password) (string, error) {
	hash, err := s.creds.PasswordHash(ctx, user.ID)
	if err != nil {
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(string(password))); err != nil {
		return "", fmt.Errorf("%w for %s", domain.ErrInvalidCredentials, user.Email)
	}
	return s.tokens.Issue(user)
}

func (s *LocalAuthService) Identify(ctx context.Context, token string) (*domain.User, error) {
	id, err := s.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id.UserID)
}

var _ usecase.AuthService = (*LocalAuthService)(nil)
