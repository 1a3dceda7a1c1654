package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// UserCacheRepository caches username lookups in Redis. Users are never
// mutated or deleted, so entries only expire.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{client: client, exp: expiration}
}

func userCacheKey(username string) string {
	return "user:username:" + username
}

// cachedUser keeps created_at, which models.User leaves out of its JSON form.
type cachedUser struct {
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Get returns the cached user, or nil on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, username string) (*models.User, error) {
	key := userCacheKey(username)

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		logger.Log.Infow("cache get failed", "key", key, "error", err)
		return nil, err
	}

	var cached cachedUser
	if err := json.Unmarshal([]byte(val), &cached); err != nil {
		logger.Log.Infow("cache decode failed", "key", key, "value", val, "error", err)
		return nil, err
	}

	logger.Log.Debugw("cache hit", "key", key)
	return &models.User{UserID: cached.UserID, Username: cached.Username, CreatedAt: cached.CreatedAt}, nil
}

// Set stores the user with the repository's expiration.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.User) error {
	key := userCacheKey(user.Username)

	data, err := json.Marshal(cachedUser{
		UserID:    user.UserID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	})
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Infow("cache set", "key", key, "ttl", r.exp, "error", err)
	return err
}

