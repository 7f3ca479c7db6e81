package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vishaldubey2210/portfolio/database"
	"github.com/vishaldubey2210/portfolio/models"
	"github.com/vishaldubey2210/portfolio/pkg"
)

// sqliteUserRepo reads and writes the users table. The password column holds
// the bcrypt hash; full_name is nullable and reads back as "".
type sqliteUserRepo struct {
	db database.TxQuerier
}

// NewSQLiteUserRepo returns a UserRepository backed by db.
func NewSQLiteUserRepo(db database.TxQuerier) UserRepository {
	return &sqliteUserRepo{db: db}
}

// userColumns is the SELECT list every lookup scans in getOne.
const userColumns = `id, username, email, password, COALESCE(full_name, ''), is_admin, created_at`

func (r *sqliteUserRepo) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password, full_name, is_admin)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.IsAdmin,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		switch {
		case isUniqueViolation(err, "users.username"):
			return pkg.Conflict("Username already exists")
		case isUniqueViolation(err, "users.email"):
			return pkg.Conflict("Email already exists")
		case isUniqueViolation(err, ""):
			return pkg.Conflict("Registration failed")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *sqliteUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
}

func (r *sqliteUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE username = ?", username)
}

func (r *sqliteUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
}

func (r *sqliteUserRepo) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.FullName, &user.IsAdmin, &user.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *sqliteUserRepo) Count(ctx context.Context) (int, error) {
	return countRows(ctx, r.db, "users")
}
