package security

import (
	"errors"
	"testing"
	"time"

	"github.com/hqv2816/storefront-api/configs"
	"github.com/hqv2816/storefront-api/internal/domain"
)

func testConfig(secret string, ttl time.Duration) configs.Config {
	var cfg configs.Config
	cfg.Security.JWTSecret = secret
	cfg.Security.Issuer = "storefront-api"
	cfg.Security.Audience = "storefront-clients"
	cfg.Security.TTL = ttl
	return cfg
}

func testUser(t *testing.T) *domain.User {
	t.Helper()
	email, err := domain.NewEmail("ana@example.com")
	if err != nil {
		t.Fatal(err)
	}
	return domain.NewUser("u1", email, "Ana", domain.RoleAdmin)
}

func TestIssueParseRoundTrip(t *testing.T) {
	svc := NewTokenService(testConfig("test-secret", time.Hour))
	u := testUser(t)

	raw, err := svc.Issue(u)
	if err != nil {
		t.Fatal(err)
	}

	id, err := svc.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	if id.UserID != "u1" || id.Email.String() != "ana@example.com" || id.Role != domain.RoleAdmin {
		t.Fatalf("identity = %+v", id)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenService(testConfig("secret-a", time.Hour))
	verifier := NewTokenService(testConfig("secret-b", time.Hour))

	raw, err := issuer.Issue(testUser(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.Parse(raw); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestParseRejectsExpired(t *testing.T) {
	// expiry well past the 30s leeway
	svc := NewTokenService(testConfig("test-secret", -5*time.Minute))

	raw, err := svc.Issue(testUser(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Parse(raw); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestParseRejectsIssuerMismatch(t *testing.T) {
	issuerCfg := testConfig("test-secret", time.Hour)
	issuerCfg.Security.Issuer = "someone-else"
	issuer := NewTokenService(issuerCfg)
	verifier := NewTokenService(testConfig("test-secret", time.Hour))

	raw, err := issuer.Issue(testUser(t))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := verifier.Parse(raw); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	svc := NewTokenService(testConfig("test-secret", time.Hour))
	if _, err := svc.Parse("not.a.jwt"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}
