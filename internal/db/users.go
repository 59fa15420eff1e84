package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"icolleague/internal/models"
)

const userColumns = `id, username, password_hash, COALESCE(sub, ''), email, name, created_at, updated_at`

// CreateUser inserts a local account. Returns ErrDuplicateUsername if the
// username is taken.
func (d *DB) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, password_hash, email, name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := d.Pool.QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.Name,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateUsername
		}
		return err
	}

	return nil
}

// UpsertSSOUser creates or updates a user based on their OIDC subject.
// New accounts take the preferred username when it is free and the subject
// otherwise.
func (d *DB) UpsertSSOUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, sub, email, name)
		VALUES (
			CASE WHEN EXISTS (
				SELECT 1 FROM users WHERE username = $1 AND sub IS DISTINCT FROM $2
			) THEN $2 ELSE $1 END,
			$2, $3, $4
		)
		ON CONFLICT (sub) DO UPDATE SET
			email = EXCLUDED.email,
			name = EXCLUDED.name,
			updated_at = NOW()
		RETURNING id, username, created_at, updated_at
	`

	username := user.Username
	if username == "" {
		username = user.Sub
	}

	return d.Pool.QueryRow(ctx, query,
		username,
		user.Sub,
		user.Email,
		user.Name,
	).Scan(&user.ID, &user.Username, &user.CreatedAt, &user.UpdatedAt)
}

// GetUserByUsername retrieves a user by their login name.
func (d *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return d.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username)
}

// GetUserByID retrieves a user by their UUID.
func (d *DB) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return d.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (d *DB) getUser(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := d.Pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Sub,
		&user.Email,
		&user.Name,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
