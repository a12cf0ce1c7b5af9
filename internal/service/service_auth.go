package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-ads-board/internal/config"
	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/store"
	"github.com/MKhiriev/go-ads-board/internal/utils"
	"github.com/MKhiriev/go-ads-board/internal/validators"
	"github.com/MKhiriev/go-ads-board/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; avatars uploaded with the
// registration go to the AvatarStorage before the user row is inserted.
type authService struct {
	userRepository store.UserRepository
	avatars        store.AvatarStorage
	validator      validators.Validator

	// hashCost is the bcrypt cost for new password hashes.
	hashCost int

	// dummyHash is compared against when the login is unknown so that both
	// failure paths spend the same bcrypt time.
	dummyHash     string
	dummyHashOnce sync.Once

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(userRepository store.UserRepository, avatars store.AvatarStorage, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		avatars:        avatars,
		validator:      validators.NewBoardValidator(),
		hashCost:       cfg.PasswordHashCost,
		logger:         logger,
	}
}

// RegisterUser validates the registration, hashes the password, stores the
// avatar (if any) and inserts the user.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided wrapping the validation error.
//   - store.ErrLoginAlreadyExists when the login is taken.
func (a *authService) RegisterUser(ctx context.Context, registration models.Registration) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, registration); err != nil {
		log.Debug().Err(err).Str("login", registration.Login).Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(registration.Password, a.hashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	user := models.User{
		Login:        registration.Login,
		PasswordHash: hash,
		FullName:     registration.FullName,
		Email:        registration.Email,
		About:        registration.About,
	}

	if registration.Avatar != nil {
		key, err := a.avatars.Save(ctx, registration.Avatar.FileName, registration.Avatar.Content)
		if err != nil {
			log.Err(err).Str("login", registration.Login).Msg("avatar upload failed")
			return models.User{}, fmt.Errorf("avatar upload failed: %w", err)
		}
		user.Avatar = key
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		a.discardAvatar(ctx, user.Avatar)
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login looks the account up by login and verifies the password.
func (a *authService) Login(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		return models.User{}, ErrWrongPassword
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.VerifyPassword(a.getDummyHash(), password)
			log.Info().Str("login", login).Msg("login attempt for unknown user")
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if !utils.VerifyPassword(foundUser.PasswordHash, password) {
		log.Info().Int64("id", foundUser.UserID).Str("login", foundUser.Login).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// EnsureAdmin creates an administrator named login unless the login already
// exists. An empty login disables the bootstrap.
func (a *authService) EnsureAdmin(ctx context.Context, login, password string) error {
	if login == "" {
		return nil
	}

	existing, err := a.userRepository.FindUserByLogin(ctx, login)
	switch {
	case err == nil:
		if !existing.IsAdmin {
			a.logger.Warn().Str("login", login).Msg("bootstrap admin login belongs to a regular user")
		}
		return nil
	case !errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("error looking up bootstrap admin: %w", err)
	}

	if err = a.validator.Validate(ctx, models.Registration{Login: login, Password: password}, validators.FieldLogin, validators.FieldPassword); err != nil {
		return fmt.Errorf("%w: bootstrap admin: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(password, a.hashCost)
	if err != nil {
		return err
	}

	admin, err := a.userRepository.CreateUser(ctx, models.User{
		Login:        login,
		PasswordHash: hash,
		FullName:     "Administrator",
		IsAdmin:      true,
	})
	if err != nil {
		if errors.Is(err, store.ErrLoginAlreadyExists) {
			return nil
		}
		return fmt.Errorf("error creating bootstrap admin: %w", err)
	}

	a.logger.Info().Int64("id", admin.UserID).Str("login", login).Msg("bootstrap admin created")
	return nil
}

func (a *authService) getDummyHash() string {
	a.dummyHashOnce.Do(func() {
		a.dummyHash, _ = utils.HashPassword("dummy-password", a.hashCost)
	})
	return a.dummyHash
}

func (a *authService) discardAvatar(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := a.avatars.Delete(ctx, key); err != nil {
		logger.FromContext(ctx).Err(err).Str("key", key).Msg("error discarding avatar")
	}
}
