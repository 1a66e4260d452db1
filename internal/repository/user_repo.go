package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"pokedex-api/internal/model"
)

// UserRepository is the credential store: a durable mapping from username
// to the stored credential record.
type UserRepository struct {
	pool pool
}

func NewUserRepository(pool pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// FindByUsername looks up the first record matching username exactly.
// Absence is a normal result, reported through the found flag rather than
// an error. Usernames are not unique in the table; with duplicates the
// oldest row wins.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (model.User, bool, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at
		 FROM users WHERE username = $1
		 ORDER BY created_at LIMIT 1`, username).
		Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, fmt.Errorf("find user by username: %w", err)
	}
	return u, true, nil
}

// Insert persists a new credential record and returns it with the
// store-assigned id. Uniqueness of the username is not checked here.
func (r *UserRepository) Insert(ctx context.Context, u model.User) (model.User, error) {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now().UTC()

	_, err := r.pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, created_at)
		 VALUES ($1, $2, $3, $4)`,
		u.ID, u.Username, u.PasswordHash, u.CreatedAt)
	if err != nil {
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}
