package repositories

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	alice, err := repo.Save(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, alice.UserID)

	_, err = repo.Save(ctx, "alice")
	assert.ErrorIs(t, err, models.ErrUsernameTaken)

	_, err = repo.Save(ctx, "bob")
	require.NoError(t, err)

	got, err := repo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice, got)

	missing, err := repo.GetByUsername(ctx, "ghost")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)
}

func TestMemoryUserRepository_ConcurrentDuplicates(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Save(ctx, "same"); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
}

func TestMemoryExerciseRepository_Find(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryExerciseRepository()
	bob, carol := uuid.New(), uuid.New()
	day := func(d int) time.Time { return time.Date(2023, 1, d, 0, 0, 0, 0, time.UTC) }

	for _, d := range []int{10, 1, 5} {
		saved, err := repo.Save(ctx, models.NewExercise{UserID: bob, Description: fmt.Sprint(d), Duration: d, Date: day(d)})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, saved.ExerciseID)
	}
	_, err := repo.Save(ctx, models.NewExercise{UserID: carol, Description: "carol", Duration: 1, Date: day(5)})
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter models.LogFilter
		want   []int
	}{
		{name: "all", filter: models.LogFilter{UserID: bob}, want: []int{1, 5, 10}},
		{name: "from inclusive", filter: models.LogFilter{UserID: bob, From: day(5)}, want: []int{5, 10}},
		{name: "to exclusive", filter: models.LogFilter{UserID: bob, To: day(6)}, want: []int{1, 5}},
		{name: "range", filter: models.LogFilter{UserID: bob, From: day(2), To: day(10)}, want: []int{5}},
		{name: "limit", filter: models.LogFilter{UserID: bob, Limit: 2}, want: []int{1, 5}},
		{name: "other user", filter: models.LogFilter{UserID: carol}, want: []int{1}},
		{name: "unknown user", filter: models.LogFilter{UserID: uuid.New()}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := repo.Find(ctx, tt.filter)
			require.NoError(t, err)

			got := make([]int, 0, len(entries))
			for _, e := range entries {
				assert.Equal(t, tt.filter.UserID, e.UserID)
				got = append(got, e.Duration)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
