package repository

import (
	"context"
	"errors"
	"fmt"

	"yourfuture/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByTelegram(ctx context.Context, telegram string) (*model.User, error)
	UpdateProfile(ctx context.Context, user *model.User) error
	ListExcept(ctx context.Context, id int64) ([]model.UserSummary, error)
}

type userRepository struct {
	db DBTX
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DBTX) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, username, password_hash, role, full_name, telegram, resume_link, created_at`

func scanUser(row rowScanner) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.FullName, &u.Telegram, &u.ResumeLink, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new user. A taken username or telegram handle yields a
// Conflict.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (username, password_hash, role, full_name, telegram, resume_link)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.db.QueryRow(ctx, sql, user.Username, user.PasswordHash, user.Role, user.FullName, user.Telegram, user.ResumeLink).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return wrapError(err, "create user")
	}
	return nil
}

func (r *userRepository) findOne(ctx context.Context, where string, arg any) (*model.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // not found is reported by the caller
		}
		return nil, err
	}
	return u, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	u, err := r.findOne(ctx, `id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return u, nil
}

// FindByUsername retrieves a user by their username
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	u, err := r.findOne(ctx, `username = $1`, username)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return u, nil
}

// FindByTelegram retrieves the user holding a telegram handle
func (r *userRepository) FindByTelegram(ctx context.Context, telegram string) (*model.User, error) {
	u, err := r.findOne(ctx, `telegram = $1`, telegram)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by telegram: %w", err)
	}
	return u, nil
}

// UpdateProfile stores full_name, telegram and resume_link.
func (r *userRepository) UpdateProfile(ctx context.Context, user *model.User) error {
	sql := `UPDATE users SET full_name = $1, telegram = $2, resume_link = $3 WHERE id = $4`
	tag, err := r.db.Exec(ctx, sql, user.FullName, user.Telegram, user.ResumeLink, user.ID)
	if err != nil {
		return wrapError(err, "update profile")
	}
	return expectOneRow(tag, "user", user.ID)
}

// ListExcept returns every user but id, ordered by id.
func (r *userRepository) ListExcept(ctx context.Context, id int64) ([]model.UserSummary, error) {
	rows, err := r.db.Query(ctx, `SELECT id, username FROM users WHERE id <> $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []model.UserSummary{}
	for rows.Next() {
		var u model.UserSummary
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}
