package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// UserReadRepository reads users from PostgreSQL.
type UserReadRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewUserReadRepository(db *sqlx.DB, timeout time.Duration) *UserReadRepository {
	return &UserReadRepository{db: db, timeout: timeout}
}

// GetByUsername returns the user with the given username, or nil if there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT user_id, username, created_at
		FROM users
		WHERE username = $1
	`

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username)
	logQuery(query, []any{username}, user, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users in insertion order.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	const query = `
		SELECT user_id, username, created_at
		FROM users
		ORDER BY created_at, user_id
	`

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, query)
	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// UserWriteRepository inserts users into PostgreSQL.
type UserWriteRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewUserWriteRepository(db *sqlx.DB, timeout time.Duration) *UserWriteRepository {
	return &UserWriteRepository{db: db, timeout: timeout}
}

// Save inserts a user and returns the stored row.
// A username that already exists yields models.ErrUsernameTaken.
func (r *UserWriteRepository) Save(ctx context.Context, username string) (*models.User, error) {
	const query = `
		INSERT INTO users (user_id, username, created_at)
		VALUES ($1, $2, NOW())
		RETURNING user_id, username, created_at
	`
	args := []any{uuid.New(), username}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var user models.User
	err := r.db.GetContext(ctx, &user, query, args...)
	logQuery(query, args, user, err)

	if isUniqueViolation(err) {
		return nil, models.ErrUsernameTaken
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
