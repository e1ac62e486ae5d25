package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hqv2816/storefront-api/configs"
	"github.com/hqv2816/storefront-api/internal/domain"
)

// Identity is what a verified bearer token asserts about the caller.
type Identity struct {
	UserID string
	Email  domain.Email
	Role   domain.Role
}

// TokenService issues and verifies the HS256 bearer tokens used by the
// storefront when it runs its own authentication (mysql/memory drivers).
type TokenService struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewTokenService(cfg configs.Config) *TokenService {
	ttl := cfg.Security.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenService{
		secret:   []byte(cfg.Security.JWTSecret),
		issuer:   cfg.Security.Issuer,
		audience: cfg.Security.Audience,
		ttl:      ttl,
	}
}

func (s *TokenService) Issue(u *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   s.issuer,
		"aud":   s.audience,
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
		"sub":   u.ID,
		"email": u.Email.String(),
		"role":  string(u.Role),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies signature, issuer, audience, and validity window, and
// returns the asserted identity.
func (s *TokenService) Parse(raw string) (Identity, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithLeeway(30*time.Second)) // small clock skew
	if err != nil || !token.Valid {
		return Identity{}, fmt.Errorf("%w: invalid token", domain.ErrInvalidCredentials)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("claims parsing error")
	}
	if claims["iss"] != s.issuer || claims["aud"] != s.audience {
		return Identity{}, fmt.Errorf("%w: iss/aud mismatch", domain.ErrInvalidCredentials)
	}

	sub, _ := claims["sub"].(string)
	rawEmail, _ := claims["email"].(string)
	rawRole, _ := claims["role"].(string)

	email, err := domain.NewEmail(rawEmail)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: bad email claim", domain.ErrInvalidCredentials)
	}
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: bad role claim", domain.ErrInvalidCredentials)
	}
	return Identity{UserID: sub, Email: email, Role: role}, nil
}
