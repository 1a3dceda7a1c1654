package repositories

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// ExerciseWriteRepository inserts exercises into PostgreSQL.
type ExerciseWriteRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewExerciseWriteRepository(db *sqlx.DB, timeout time.Duration) *ExerciseWriteRepository {
	return &ExerciseWriteRepository{db: db, timeout: timeout}
}

// Save inserts an exercise and returns the stored row.
func (r *ExerciseWriteRepository) Save(ctx context.Context, e models.NewExercise) (*models.Exercise, error) {
	const query = `
		INSERT INTO exercises (exercise_id, user_id, description, duration, date, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING exercise_id, user_id, description, duration, date, created_at
	`
	args := []any{uuid.New(), e.UserID, e.Description, e.Duration, e.Date}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var exercise models.Exercise
	err := r.db.GetContext(ctx, &exercise, query, args...)
	logQuery(query, args, exercise, err)

	if err != nil {
		return nil, err
	}
	return &exercise, nil
}

// ExerciseReadRepository queries exercise logs from PostgreSQL.
type ExerciseReadRepository struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewExerciseReadRepository(db *sqlx.DB, timeout time.Duration) *ExerciseReadRepository {
	return &ExerciseReadRepository{db: db, timeout: timeout}
}

// Find returns the projected log entries matching the filter, ordered by date
// and then by insertion time.
func (r *ExerciseReadRepository) Find(ctx context.Context, f models.LogFilter) ([]models.ExerciseLogEntry, error) {
	query, args := buildLogQuery(f)

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	entries := []models.ExerciseLogEntry{}
	err := r.db.SelectContext(ctx, &entries, query, args...)
	logQuery(query, args, len(entries), err)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

func buildLogQuery(f models.LogFilter) (string, []any) {
	var b strings.Builder
	args := []any{f.UserID}

	b.WriteString("SELECT user_id, description, duration, date FROM exercises WHERE user_id = $1")

	if !f.From.IsZero() {
		args = append(args, f.From)
		b.WriteString(" AND date >= $" + strconv.Itoa(len(args)))
	}
	if !f.To.IsZero() {
		args = append(args, f.To)
		b.WriteString(" AND date < $" + strconv.Itoa(len(args)))
	}

	b.WriteString(" ORDER BY date, created_at")

	if f.Limit > 0 {
		args = append(args, f.Limit)
		b.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}

	return b.String(), args
}
