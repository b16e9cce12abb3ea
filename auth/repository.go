package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/user/bloglist-go/apperror"
	"github.com/user/bloglist-go/db"
)

// UserRepository persists account identities. The credential verifier depends
// on this interface rather than on the storage engine, so the uniqueness and
// not-found outcomes arrive as typed errors regardless of backend.
type UserRepository interface {
	// Create inserts a new user and fills in the assigned ID and creation
	// time. A username conflict is reported as a DuplicateKeyError.
	Create(ctx context.Context, u *User) error
	// GetByUsername returns the user with the given username, or a
	// NotFoundError.
	GetByUsername(ctx context.Context, username string) (*User, error)
}

// PostgresUserRepository implements UserRepository over pgx.
type PostgresUserRepository struct {
	db *db.DB
}

// NewPostgresUserRepository constructs a user repository.
func NewPostgresUserRepository(database *db.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: database}
}

var _ UserRepository = (*PostgresUserRepository)(nil)

// Create inserts a new user row. The store assigns the identifier.
func (r *PostgresUserRepository) Create(ctx context.Context, u *User) error {
	const q = `
INSERT INTO users (username, name, password_hash)
VALUES ($1, $2, $3)
RETURNING user_id, created_at`
	err := r.db.Pool.QueryRow(ctx, q, u.Username, u.Name, u.PasswordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return apperror.NewDuplicateKeyError("expected `username` to be unique", err)
		}
		return apperror.NewDatabaseError("failed to create user", err)
	}
	return nil
}

// GetByUsername selects a user by username.
func (r *PostgresUserRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	const q = `
SELECT user_id, username, name, password_hash, created_at
FROM users WHERE username = $1`
	var u User
	err := r.db.Pool.QueryRow(ctx, q, username).Scan(&u.ID, &u.Username, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user by username", err)
	}
	return &u, nil
}
