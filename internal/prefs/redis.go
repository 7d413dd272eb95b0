package prefs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/darrkasamna/catalog/pkg/config"
	"github.com/darrkasamna/catalog/pkg/logging"
)

const keyNamespace = "catalog:"

// ErrStoreDisabled is returned when redis operations are attempted on a
// disabled store
var ErrStoreDisabled = errors.New("preference store is disabled")

// RedisStore keeps preferences in Redis, shared by every client of the
// same server
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to cfg.URL. A disabled config yields a nil store.
func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	logger := logging.WithComponent("prefs")
	if !cfg.Enabled {
		logger.Info("Redis preference store disabled")
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established", zap.String("addr", opt.Addr))

	return &RedisStore{client: client}, nil
}

func namespaceKey(key string) string {
	return keyNamespace + key
}

// NightMode returns the stored preference, false when unset
func (s *RedisStore) NightMode(ctx context.Context) (bool, error) {
	if s == nil || s.client == nil {
		return false, ErrStoreDisabled
	}
	val, err := s.client.Get(ctx, namespaceKey(NightModeKey)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read night mode: %w", err)
	}
	return parseFlag(val), nil
}

// SetNightMode stores the preference without expiry
func (s *RedisStore) SetNightMode(ctx context.Context, on bool) error {
	if s == nil || s.client == nil {
		return ErrStoreDisabled
	}
	return s.client.Set(ctx, namespaceKey(NightModeKey), strconv.FormatBool(on), 0).Err()
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Health checks Redis health
func (s *RedisStore) Health(ctx context.Context) error {
	if s == nil || s.client == nil {
		return ErrStoreDisabled
	}
	return s.client.Ping(ctx).Err()
}
