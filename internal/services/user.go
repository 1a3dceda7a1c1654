package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/metrics"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

//go:generate mockgen -source=user.go -destination=user_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error) // Returns nil when no user matches
	List(ctx context.Context) ([]models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username string) (*models.User, error) // Returns models.ErrUsernameTaken on duplicates
}

// UserService is the user registry.
type UserService struct {
	reader      UserReader
	writer      UserWriter
	kafkaWriter KafkaWriter
}

// NewUserService creates a new UserService. kafkaWriter may be nil.
func NewUserService(reader UserReader, writer UserWriter, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		kafkaWriter: kafkaWriter,
	}
}

// Register creates a user with a unique, non-blank username.
func (svc *UserService) Register(ctx context.Context, username string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, models.NewValidationError("Invalid username")
	}

	user, err := svc.writer.Save(ctx, username)
	if errors.Is(err, models.ErrUsernameTaken) {
		logger.Log.Infow("user already exists", "username", username)
		return nil, &models.DuplicateUserError{Username: username}
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "username", username, "err", err)
		return nil, models.NewStorageError("Error saving new user", err)
	}

	metrics.UsersRegistered.Inc()
	publishEvent(ctx, svc.kafkaWriter, models.EventUserRegistered, user.Username, user)

	return user, nil
}

// List returns every registered user.
func (svc *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, models.NewStorageError("Error listing users", err)
	}
	return users, nil
}
