package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// MemoryUserRepository keeps users in process memory. It satisfies the same
// read and write contracts as the PostgreSQL repositories.
type MemoryUserRepository struct {
	mu      sync.RWMutex
	byName  map[string]models.User
	ordered []models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{byName: make(map[string]models.User)}
}

func (r *MemoryUserRepository) Save(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[username]; ok {
		return nil, models.ErrUsernameTaken
	}

	user := models.User{
		UserID:    uuid.New(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}
	r.byName[username] = user
	r.ordered = append(r.ordered, user)

	return &user, nil
}

func (r *MemoryUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byName[username]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *MemoryUserRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, len(r.ordered))
	copy(users, r.ordered)
	return users, nil
}

// MemoryExerciseRepository keeps exercises in process memory.
type MemoryExerciseRepository struct {
	mu        sync.RWMutex
	exercises []models.Exercise
}

func NewMemoryExerciseRepository() *MemoryExerciseRepository {
	return &MemoryExerciseRepository{}
}

func (r *MemoryExerciseRepository) Save(ctx context.Context, e models.NewExercise) (*models.Exercise, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exercise := models.Exercise{
		ExerciseID:  uuid.New(),
		UserID:      e.UserID,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date,
		CreatedAt:   time.Now().UTC(),
	}
	r.exercises = append(r.exercises, exercise)

	return &exercise, nil
}

// Find mirrors ExerciseReadRepository.Find: date order, insertion order on ties.
func (r *MemoryExerciseRepository) Find(ctx context.Context, f models.LogFilter) ([]models.ExerciseLogEntry, error) {
	r.mu.RLock()
	matched := make([]models.Exercise, 0)
	for _, e := range r.exercises {
		if f.Match(e) {
			matched = append(matched, e)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})

	if f.Limit > 0 && len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}

	entries := make([]models.ExerciseLogEntry, 0, len(matched))
	for _, e := range matched {
		entries = append(entries, e.Entry())
	}
	return entries, nil
}
