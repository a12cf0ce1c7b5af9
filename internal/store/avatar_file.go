package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/utils"
)

// avatarFileStorage keeps avatars as plain files in a single directory.
// Keys are "<uuid>_<sanitised name>", so two uploads with the same client
// file name never overwrite each other.
type avatarFileStorage struct {
	dir    string
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewAvatarFileStorage creates dir if needed and returns an [AvatarStorage]
// writing into it.
func NewAvatarFileStorage(dir string, log *logger.Logger) (AvatarStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory %q: %w", dir, err)
	}

	log.Debug().Str("dir", dir).Msg("creating avatar file storage")
	return &avatarFileStorage{
		dir:    dir,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}, nil
}

func (s *avatarFileStorage) Save(ctx context.Context, fileName string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	key := newAvatarKey(s.ids, fileName)
	path := filepath.Join(s.dir, key)

	// O_EXCL: a key collision is an error, never an overwrite
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*avatarFileStorage.Save").Str("key", key).Msg("error creating avatar file")
		return "", fmt.Errorf("error creating avatar file: %w", err)
	}

	if _, err = io.Copy(file, content); err != nil {
		file.Close()
		os.Remove(path)
		log.Err(err).Str("func", "*avatarFileStorage.Save").Str("key", key).Msg("error writing avatar file")
		return "", fmt.Errorf("error writing avatar file: %w", err)
	}

	if err = file.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("error closing avatar file: %w", err)
	}

	return key, nil
}

func (s *avatarFileStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validateAvatarKey(key); err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.dir, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrAvatarNotFound
		}
		return nil, fmt.Errorf("error opening avatar file: %w", err)
	}

	return file, nil
}

func (s *avatarFileStorage) Delete(ctx context.Context, key string) error {
	if err := validateAvatarKey(key); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.dir, key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Err(err).Str("func", "*avatarFileStorage.Delete").Str("key", key).Msg("error removing avatar file")
		return fmt.Errorf("error removing avatar file: %w", err)
	}

	return nil
}

func newAvatarKey(ids *utils.UUIDGenerator, fileName string) string {
	return ids.Generate() + "_" + utils.SanitizeFileName(fileName)
}

// validateAvatarKey rejects keys that are not a single sanitised path
// element.
func validateAvatarKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return ErrInvalidAvatarKey
	}
	if utils.SanitizeFileName(key) != key {
		return ErrInvalidAvatarKey
	}
	return nil
}
