package domain

import "fmt"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

type User struct {
	ID    string
	Email Email
	Name  string
	Role  Role
}

func NewUser(id string, email Email, name string, role Role) *User {
	return &User{ID: id, Email: email, Name: name, Role: role}
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
