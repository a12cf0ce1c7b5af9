package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/store"
	"github.com/MKhiriev/go-ads-board/internal/validators"
	"github.com/MKhiriev/go-ads-board/models"
)

type userService struct {
	userRepository store.UserRepository
	avatars        store.AvatarStorage
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, avatars store.AvatarStorage, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		avatars:        avatars,
		validator:      validators.NewBoardValidator(),
		logger:         logger,
	}
}

// Profile returns the requester's own account.
func (s *userService) Profile(ctx context.Context, identity models.Identity) (models.User, error) {
	if err := Authorize(identity, 0, AccessAuthenticated); err != nil {
		return models.User{}, err
	}

	user, err := s.userRepository.FindUserByID(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUnauthenticated
		}
		return models.User{}, err
	}
	return user, nil
}

// UpdateProfile edits the requester's own account. It is always scoped to
// identity.UserID.
func (s *userService) UpdateProfile(ctx context.Context, identity models.Identity, update models.ProfileUpdate) (models.User, error) {
	if err := Authorize(identity, 0, AccessAuthenticated); err != nil {
		return models.User{}, err
	}
	return s.update(ctx, identity.UserID, update)
}

// Avatar opens the stored avatar of userID.
func (s *userService) Avatar(ctx context.Context, userID int64) (io.ReadCloser, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Avatar == "" {
		return nil, store.ErrAvatarNotFound
	}
	return s.avatars.Open(ctx, user.Avatar)
}

func (s *userService) ListUsers(ctx context.Context, identity models.Identity) ([]models.User, error) {
	if err := authorizeAdmin(ctx, s.userRepository, identity); err != nil {
		return nil, err
	}
	return s.userRepository.ListUsers(ctx)
}

func (s *userService) GetUser(ctx context.Context, identity models.Identity, userID int64) (models.User, error) {
	if err := authorizeAdmin(ctx, s.userRepository, identity); err != nil {
		return models.User{}, err
	}
	return s.userRepository.FindUserByID(ctx, userID)
}

func (s *userService) UpdateUser(ctx context.Context, identity models.Identity, userID int64, update models.ProfileUpdate) (models.User, error) {
	if err := authorizeAdmin(ctx, s.userRepository, identity); err != nil {
		return models.User{}, err
	}
	return s.update(ctx, userID, update)
}

// DeleteUser removes the account, its ads (by cascade) and its avatar.
func (s *userService) DeleteUser(ctx context.Context, identity models.Identity, userID int64) error {
	log := logger.FromContext(ctx)

	if err := authorizeAdmin(ctx, s.userRepository, identity); err != nil {
		return err
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err = s.userRepository.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("user deletion failed: %w", err)
	}
	s.discardAvatar(ctx, user.Avatar)

	log.Info().Int64("admin_id", identity.UserID).Int64("user_id", userID).Msg("user deleted by admin")
	return nil
}

func (s *userService) update(ctx context.Context, userID int64, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	previousAvatar := user.Avatar

	user.FullName = update.FullName
	user.Email = update.Email
	user.About = update.About

	var newAvatar string
	if update.Avatar != nil {
		newAvatar, err = s.avatars.Save(ctx, update.Avatar.FileName, update.Avatar.Content)
		if err != nil {
			log.Err(err).Int64("user_id", userID).Msg("avatar upload failed")
			return models.User{}, fmt.Errorf("avatar upload failed: %w", err)
		}
		user.Avatar = newAvatar
	}

	// the repository keeps the stored avatar when none is passed
	row := user
	row.Avatar = newAvatar
	if err = s.userRepository.UpdateUser(ctx, row); err != nil {
		s.discardAvatar(ctx, newAvatar)
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	if newAvatar != "" {
		s.discardAvatar(ctx, previousAvatar)
	}

	return user, nil
}

func (s *userService) discardAvatar(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.avatars.Delete(ctx, key); err != nil {
		logger.FromContext(ctx).Err(err).Str("key", key).Msg("error discarding avatar")
	}
}
