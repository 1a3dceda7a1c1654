package services

import (
	"context"
	"strings"
	"time"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/metrics"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

//go:generate mockgen -source=exercise.go -destination=exercise_mock.go -package=services

// ExerciseWriter persists exercises.
type ExerciseWriter interface {
	Save(ctx context.Context, e models.NewExercise) (*models.Exercise, error)
}

// ExerciseReader queries exercise logs.
type ExerciseReader interface {
	Find(ctx context.Context, f models.LogFilter) ([]models.ExerciseLogEntry, error)
}

// UserCache caches username lookups.
type UserCache interface {
	Get(ctx context.Context, username string) (*models.User, error) // Returns nil on a miss
	Set(ctx context.Context, user *models.User) error
}

// ExerciseService attaches exercises to users and answers log queries.
type ExerciseService struct {
	users       UserReader
	cache       UserCache
	writer      ExerciseWriter
	reader      ExerciseReader
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewExerciseService creates a new ExerciseService. cache and kafkaWriter may be nil.
func NewExerciseService(
	users UserReader,
	cache UserCache,
	writer ExerciseWriter,
	reader ExerciseReader,
	kafkaWriter KafkaWriter,
) *ExerciseService {
	return &ExerciseService{
		users:       users,
		cache:       cache,
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
		now:         time.Now,
	}
}

// Add validates the input, resolves the owner by username and persists the exercise.
// Without a date the exercise is stamped with the current moment.
func (s *ExerciseService) Add(ctx context.Context, in AddExerciseInput) (*models.Exercise, error) {
	v, err := in.validate()
	if err != nil {
		logger.Log.Infow("invalid exercise", "userId", in.UserID, "error", err)
		return nil, err
	}

	user, err := s.resolveUser(ctx, v.username)
	if err != nil {
		return nil, err
	}

	date := v.date
	if !v.hasDate {
		date = s.now().UTC()
	}

	exercise, err := s.writer.Save(ctx, models.NewExercise{
		UserID:      user.UserID,
		Description: v.description,
		Duration:    v.duration,
		Date:        date,
	})
	if err != nil {
		logger.Log.Errorw("failed to save exercise", "username", user.Username, "error", err)
		return nil, models.NewStorageError("Error saving exercise", err)
	}

	metrics.ExercisesAdded.Inc()
	publishEvent(ctx, s.kafkaWriter, models.EventExerciseAdded, user.Username, exercise)

	return exercise, nil
}

// Log returns the user's exercises filtered by date range and capped by limit.
// The user is resolved before the optional parameters are validated.
func (s *ExerciseService) Log(ctx context.Context, q LogQuery) ([]models.ExerciseLogEntry, error) {
	filter, filterErr := q.filter()

	user, err := s.resolveUser(ctx, strings.TrimSpace(q.UserID))
	if err != nil {
		return nil, err
	}
	if filterErr != nil {
		logger.Log.Infow("invalid log query", "userId", q.UserID, "error", filterErr)
		return nil, filterErr
	}

	filter.UserID = user.UserID

	entries, err := s.reader.Find(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to find exercises", "username", user.Username, "error", err)
		return nil, models.NewStorageError("Error while searching for exercises", err)
	}

	metrics.LogEntriesReturned.Observe(float64(len(entries)))
	return entries, nil
}

// resolveUser looks the username up in the cache first, then in the store.
// Cache failures are logged and fall through to the store.
func (s *ExerciseService) resolveUser(ctx context.Context, username string) (*models.User, error) {
	if username == "" {
		return nil, &models.UserNotFoundError{Username: username}
	}

	if s.cache != nil {
		user, err := s.cache.Get(ctx, username)
		if err != nil {
			logger.Log.Warnw("user cache lookup failed", "username", username, "error", err)
		}
		if user != nil {
			return user, nil
		}
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to find user", "username", username, "error", err)
		return nil, models.NewStorageError("Error finding user", err)
	}
	if user == nil {
		logger.Log.Infow("user not found", "username", username)
		return nil, &models.UserNotFoundError{Username: username}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, user); err != nil {
			logger.Log.Warnw("failed to cache user", "username", username, "error", err)
		}
	}

	return user, nil
}
