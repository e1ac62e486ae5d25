package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"

	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/usecase"
)

const mysqlErrDuplicateEntry = 1062

type MySQLUserRepo struct{ db *sql.DB }

func NewMySQLUserRepo(db *sql.DB) *MySQLUserRepo { return &MySQLUserRepo{db: db} }

func (r *MySQLUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, email, name, role FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *MySQLUserRepo) FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, email, name, role FROM users WHERE email = ?`, email.String())
	return scanUser(row)
}

func (r *MySQLUserRepo) Create(ctx context.Context, u *domain.User, password domain.Password) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(string(password)), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
INSERT INTO users (id, email, name, role, password_hash, created_at)
VALUES (?,?,?,?,?,NOW())
`, u.ID, u.Email.String(), u.Name, string(u.Role), hash)

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
		return domain.ErrEmailTaken
	}
	return err
}

// PasswordHash implements security.CredentialSource.
func (r *MySQLUserRepo) PasswordHash(ctx context.Context, userID string) (string, error) {
	var hash string
	err := r.db.QueryRowContext(ctx, `
SELECT password_hash FROM users WHERE id = ?`, userID).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrUserNotFound
	}
	return hash, err
}

func scanUser(row rowScanner) (*domain.User, error) {
	var id, rawEmail, name, rawRole string
	if err := row.Scan(&id, &rawEmail, &name, &rawRole); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	email, err := domain.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return nil, err
	}
	return domain.NewUser(id, email, name, role), nil
}

var _ usecase.UserRepo = (*MySQLUserRepo)(nil)
