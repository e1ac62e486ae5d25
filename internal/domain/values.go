package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// ProductID identifies a product in the catalog.
type ProductID string

func NewProductID(s string) (ProductID, error) {
	if strings.TrimSpace(s) == "" {
		return "", ErrInvalidProductID
	}
	return ProductID(s), nil
}

func (id ProductID) String() string { return string(id) }

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Email is a validated, lowercased email address.
type Email string

func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailPattern.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, s)
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }

const minPasswordLen = 8

// Password is a validated plaintext password. It only lives long enough to
// be checked or forwarded to the authentication backend; it is never stored.
type Password string

func NewPassword(s string) (Password, error) {
	if len(s) < minPasswordLen {
		return "", ErrPasswordTooShort
	}
	return Password(s), nil
}

// String redacts the value so a Password can never leak through logging.
func (p Password) String() string { return "********" }
