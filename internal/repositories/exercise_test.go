package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLogQuery(t *testing.T) {
	userID := uuid.New()
	from := time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 1, 6, 0, 0, 0, 0, time.UTC)
	base := "SELECT user_id, description, duration, date FROM exercises WHERE user_id = $1"

	tests := []struct {
		name      string
		filter    models.LogFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "user only",
			filter:    models.LogFilter{UserID: userID},
			wantQuery: base + " ORDER BY date, created_at",
			wantArgs:  []any{userID},
		},
		{
			name:      "from",
			filter:    models.LogFilter{UserID: userID, From: from},
			wantQuery: base + " AND date >= $2 ORDER BY date, created_at",
			wantArgs:  []any{userID, from},
		},
		{
			name:      "to",
			filter:    models.LogFilter{UserID: userID, To: to},
			wantQuery: base + " AND date < $2 ORDER BY date, created_at",
			wantArgs:  []any{userID, to},
		},
		{
			name:      "range and limit",
			filter:    models.LogFilter{UserID: userID, From: from, To: to, Limit: 5},
			wantQuery: base + " AND date >= $2 AND date < $3 ORDER BY date, created_at LIMIT $4",
			wantArgs:  []any{userID, from, to, 5},
		},
		{
			name:      "limit only",
			filter:    models.LogFilter{UserID: userID, Limit: 1},
			wantQuery: base + " ORDER BY date, created_at LIMIT $2",
			wantArgs:  []any{userID, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildLogQuery(tt.filter)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestExerciseWriteRepository_Save_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()
	exerciseID := uuid.New()
	date := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO exercises")).
		WithArgs(sqlmock.AnyArg(), userID, "run", 30, date).
		WillReturnRows(sqlmock.NewRows([]string{"exercise_id", "user_id", "description", "duration", "date", "created_at"}).
			AddRow(exerciseID.String(), userID.String(), "run", 30, date, time.Now()))

	got, err := NewExerciseWriteRepository(db, time.Second).Save(context.Background(), models.NewExercise{
		UserID:      userID,
		Description: "run",
		Duration:    30,
		Date:        date,
	})
	require.NoError(t, err)
	assert.Equal(t, exerciseID, got.ExerciseID)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, 30, got.Duration)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExerciseWriteRepository_Save_Error(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO exercises")).WillReturnError(errors.New("boom"))

	got, err := NewExerciseWriteRepository(db, 0).Save(context.Background(), models.NewExercise{UserID: uuid.New()})
	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestExerciseReadRepository_Find_Mock(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()
	from := time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)
	d1 := time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM exercises WHERE user_id = $1 AND date >= $2 ORDER BY date, created_at LIMIT $3")).
		WithArgs(userID, from, 1).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "description", "duration", "date"}).
			AddRow(userID.String(), "run", 30, d1))

	entries, err := NewExerciseReadRepository(db, time.Second).Find(context.Background(), models.LogFilter{UserID: userID, From: from, Limit: 1})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ExerciseLogEntry{UserID: userID, Description: "run", Duration: 30, Date: d1}, entries[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExerciseReadRepository_Find_Error(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta("FROM exercises")).WillReturnError(errors.New("boom"))

	entries, err := NewExerciseReadRepository(db, 0).Find(context.Background(), models.LogFilter{UserID: uuid.New()})
	assert.Error(t, err)
	assert.Nil(t, entries)
}
