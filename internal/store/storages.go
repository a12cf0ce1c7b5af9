package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-ads-board/internal/config"
	"github.com/MKhiriev/go-ads-board/internal/logger"
)

// Storages groups every persistence dependency of the service layer.
// SessionStorage is nil when no Redis address is configured.
type Storages struct {
	UserRepository UserRepository
	AdRepository   AdRepository
	AvatarStorage  AvatarStorage
	SessionStorage SessionStorage

	db    *DB
	redis *redis.Client
}

// NewStorages connects the database, applies migrations and builds the
// avatar backend (S3 when a bucket is configured, the upload directory
// otherwise) and the optional Redis session registry.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	var avatars AvatarStorage
	if cfg.S3.Bucket != "" {
		avatars, err = NewAvatarS3Storage(ctx, cfg.S3, log)
	} else {
		avatars, err = NewAvatarFileStorage(cfg.Files.UploadDir, log)
	}
	if err != nil {
		db.Close()
		return nil, err
	}

	storages := &Storages{
		UserRepository: NewUserRepository(db, log),
		AdRepository:   NewAdRepository(db, log),
		AvatarStorage:  avatars,
		db:             db,
	}

	if cfg.Redis.Address != "" {
		client, err := NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			db.Close()
			return nil, err
		}
		storages.redis = client
		storages.SessionStorage = NewSessionRedisStorage(client, log)
	}

	return storages, nil
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing database: %w", err))
		}
	}
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing redis: %w", err))
		}
	}
	return errors.Join(errs...)
}
