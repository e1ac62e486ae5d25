package domain

import (
	"errors"
	"testing"
)

func TestNewProductID(t *testing.T) {
	if _, err := NewProductID(""); !errors.Is(err, ErrInvalidProductID) {
		t.Fatalf("empty id err = %v", err)
	}
	if _, err := NewProductID("  "); !errors.Is(err, ErrInvalidProductID) {
		t.Fatalf("blank id err = %v", err)
	}
	id, err := NewProductID("p1")
	if err != nil || id.String() != "p1" {
		t.Fatalf("got %q, %v", id, err)
	}
}

func TestNewEmail(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "ana@example.com", want: "ana@example.com"},
		{in: "  Ana@Example.COM ", want: "ana@example.com"},
		{in: "not-an-email", wantErr: true},
		{in: "missing@tld", wantErr: true},
		{in: "@example.com", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		e, err := NewEmail(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidEmail) {
				t.Fatalf("NewEmail(%q) err = %v, want ErrInvalidEmail", tt.in, err)
			}
			continue
		}
		if err != nil || e.String() != tt.want {
			t.Fatalf("NewEmail(%q) = %q, %v", tt.in, e, err)
		}
	}
}

func TestNewPassword(t *testing.T) {
	if _, err := NewPassword("short"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("short password err = %v", err)
	}
	p, err := NewPassword("long-enough-secret")
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != "********" {
		t.Fatalf("Password.String() leaked: %q", p.String())
	}
}

func TestParseRole(t *testing.T) {
	if _, err := ParseRole("customer"); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseRole("admin"); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseRole("root"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("unknown role err = %v", err)
	}
}
