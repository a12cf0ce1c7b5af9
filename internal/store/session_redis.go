package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-ads-board/internal/config"
	"github.com/MKhiriev/go-ads-board/internal/logger"
)

const sessionKeyPrefix = "session:"

// sessionRedisStorage tracks live session IDs as expiring Redis keys.
type sessionRedisStorage struct {
	client redis.Cmdable
	logger *logger.Logger
}

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return client, nil
}

// NewSessionRedisStorage returns a [SessionStorage] backed by client.
func NewSessionRedisStorage(client redis.Cmdable, log *logger.Logger) SessionStorage {
	log.Debug().Msg("creating redis session storage")
	return &sessionRedisStorage{
		client: client,
		logger: log,
	}
}

func (s *sessionRedisStorage) Register(ctx context.Context, sessionID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKeyPrefix+sessionID, 1, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRedisStorage.Register").Msg("error registering session")
		return fmt.Errorf("error registering session: %w", err)
	}
	return nil
}

func (s *sessionRedisStorage) Exists(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return false, fmt.Errorf("error looking up session: %w", err)
	}
	return n > 0, nil
}

func (s *sessionRedisStorage) Revoke(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sessionRedisStorage.Revoke").Msg("error revoking session")
		return fmt.Errorf("error revoking session: %w", err)
	}
	return nil
}
