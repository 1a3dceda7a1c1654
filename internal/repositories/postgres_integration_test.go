package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(ctx, db))
	// A second run must be a no-op.
	require.NoError(t, Migrate(ctx, db))

	return db
}

func TestPostgres_UserRepositories(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	writer := NewUserWriteRepository(db, 5*time.Second)
	reader := NewUserReadRepository(db, 5*time.Second)

	alice, err := writer.Save(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", alice.Username)

	_, err = writer.Save(ctx, "alice")
	assert.ErrorIs(t, err, models.ErrUsernameTaken)

	got, err := reader.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.UserID, got.UserID)

	missing, err := reader.GetByUsername(ctx, "ghost")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	_, err = writer.Save(ctx, "bob")
	require.NoError(t, err)

	users, err := reader.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestPostgres_ExerciseRepositories(t *testing.T) {
	db := setupPostgresContainer(t)
	ctx := context.Background()

	user, err := NewUserWriteRepository(db, 0).Save(ctx, "bob")
	require.NoError(t, err)

	writer := NewExerciseWriteRepository(db, 5*time.Second)
	reader := NewExerciseReadRepository(db, 5*time.Second)
	day := func(d int) time.Time { return time.Date(2023, 1, d, 0, 0, 0, 0, time.UTC) }

	for _, d := range []int{10, 1, 5} {
		saved, err := writer.Save(ctx, models.NewExercise{UserID: user.UserID, Description: "run", Duration: d, Date: day(d)})
		require.NoError(t, err)
		assert.True(t, day(d).Equal(saved.Date))
	}

	tests := []struct {
		name   string
		filter models.LogFilter
		want   []int
	}{
		{name: "all", filter: models.LogFilter{UserID: user.UserID}, want: []int{1, 5, 10}},
		{name: "from", filter: models.LogFilter{UserID: user.UserID, From: day(3)}, want: []int{5, 10}},
		{name: "to", filter: models.LogFilter{UserID: user.UserID, To: day(6)}, want: []int{1, 5}},
		{name: "limit", filter: models.LogFilter{UserID: user.UserID, Limit: 1}, want: []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := reader.Find(ctx, tt.filter)
			require.NoError(t, err)

			got := make([]int, 0, len(entries))
			for _, e := range entries {
				got = append(got, e.Duration)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
