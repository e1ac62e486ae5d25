package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hqv2816/storefront-api/internal/adapter/rest"
	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/session"
)

func newServer(t *testing.T, handler http.HandlerFunc) *rest.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return rest.NewClient(srv.URL, 5*time.Second)
}

func TestProductRepoFindByID(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/p1" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":    "p1",
			"name":  "Keyboard",
			"price": map[string]any{"cents": 4999, "currency": "USD"},
			"stock": 7,
		})
	})

	p, err := rest.NewProductRepo(c).FindByID(context.Background(), "p1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Keyboard" || p.Price.Cents() != 4999 || p.Stock != 7 {
		t.Fatalf("product = %+v", p)
	}
}

func TestProductRepoFindByIDNotFound(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such product", http.StatusNotFound)
	})

	_, err := rest.NewProductRepo(c).FindByID(context.Background(), "missing")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("err = %v, want ErrProductNotFound", err)
	}
}

func TestClientForwardsBearerToken(t *testing.T) {
	var got string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]any{})
	})

	ctx := session.WithSession(context.Background(), session.Session{Token: "tok-abc"})
	if _, err := rest.NewProductRepo(c).FindAll(ctx); err != nil {
		t.Fatal(err)
	}
	if got != "Bearer tok-abc" {
		t.Fatalf("Authorization = %q", got)
	}
}

func TestClientNoSessionNoHeader(t *testing.T) {
	var got string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]any{})
	})

	if _, err := rest.NewProductRepo(c).FindAll(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Fatalf("Authorization = %q, want empty", got)
	}
}

func TestUserRepoFindByEmail(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users" || r.URL.Query().Get("email") != "ana@example.com" {
			t.Errorf("url = %s", r.URL.String())
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id": "u1", "email": "ana@example.com", "name": "Ana", "role": "customer",
		})
	})

	email, _ := domain.NewEmail("ana@example.com")
	u, err := rest.NewUserRepo(c).FindByEmail(context.Background(), email)
	if err != nil {
		t.Fatal(err)
	}
	if u.ID != "u1" || u.Role != domain.RoleCustomer {
		t.Fatalf("user = %+v", u)
	}
}

func TestUserRepoCreateConflict(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "email already registered", http.StatusConflict)
	})

	email, _ := domain.NewEmail("ana@example.com")
	pw, _ := domain.NewPassword("s3cret-enough")
	u := domain.NewUser("u1", email, "Ana", domain.RoleCustomer)
	err := rest.NewUserRepo(c).Create(context.Background(), u, pw)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestAuthServiceVerify(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "s3cret-enough" {
			http.Error(w, "bad credentials", http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-xyz"})
	})

	email, _ := domain.NewEmail("ana@example.com")
	u := domain.NewUser("u1", email, "Ana", domain.RoleCustomer)
	auth := rest.NewAuthService(c)

	pw, _ := domain.NewPassword("s3cret-enough")
	token, err := auth.Verify(context.Background(), u, pw)
	if err != nil || token != "tok-xyz" {
		t.Fatalf("token = %q, err = %v", token, err)
	}

	bad, _ := domain.NewPassword("wrong-password")
	if _, err := auth.Verify(context.Background(), u, bad); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthServiceIdentifyUsesInspectedToken(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer probe-token" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id": "u1", "email": "ana@example.com", "name": "Ana", "role": "admin",
		})
	})

	// the caller context carries a different token; /me must use the probed one
	ctx := session.WithSession(context.Background(), session.Session{Token: "caller-token"})
	u, err := rest.NewAuthService(c).Identify(ctx, "probe-token")
	if err != nil {
		t.Fatal(err)
	}
	if !u.IsAdmin() {
		t.Fatalf("user = %+v", u)
	}
}
