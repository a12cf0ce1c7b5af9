package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ads-board/internal/config"
	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/store"
	"github.com/MKhiriev/go-ads-board/internal/utils"
	"github.com/MKhiriev/go-ads-board/models"
)

// sessionService issues and verifies signed session tokens. When a
// SessionStorage is configured, session IDs are also registered there so
// that logout revokes the token before it expires.
type sessionService struct {
	registry store.SessionStorage
	ids      *utils.UUIDGenerator

	signKey  string
	issuer   string
	duration time.Duration

	logger *logger.Logger
}

// NewSessionService constructs a SessionService. registry may be nil.
func NewSessionService(registry store.SessionStorage, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		registry: registry,
		ids:      utils.NewUUIDGenerator(),
		signKey:  cfg.SessionSignKey,
		issuer:   cfg.SessionIssuer,
		duration: cfg.SessionDuration,
		logger:   logger,
	}
}

// Open starts a session for user. The administrator flag is copied into the
// token for display; privileged operations re-check it in the store.
func (s *sessionService) Open(ctx context.Context, user models.User) (models.Session, error) {
	identity := models.Identity{
		UserID:    user.UserID,
		IsAdmin:   user.IsAdmin,
		SessionID: s.ids.Generate(),
	}

	token, expiresAt, err := utils.GenerateSessionToken(s.issuer, identity, s.duration, s.signKey)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	if s.registry != nil {
		if err = s.registry.Register(ctx, identity.SessionID, s.duration); err != nil {
			return models.Session{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
		}
	}

	return models.Session{
		Identity:  identity,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Resolve verifies token and returns the identity it carries.
//
// Any token problem is reported as ErrSessionInvalid. A registry failure is
// returned as is so that it can be logged apart from bad cookies.
func (s *sessionService) Resolve(ctx context.Context, token string) (models.Identity, error) {
	if token == "" {
		return models.Identity{}, ErrUnauthenticated
	}

	identity, err := utils.ValidateAndParseSessionToken(token, s.signKey, s.issuer)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrSessionInvalid, err)
	}

	if s.registry != nil {
		alive, err := s.registry.Exists(ctx, identity.SessionID)
		if err != nil {
			return models.Identity{}, fmt.Errorf("error checking session: %w", err)
		}
		if !alive {
			return models.Identity{}, ErrSessionInvalid
		}
	}

	return identity, nil
}

// Close revokes the session. Without a registry there is nothing to revoke
// server-side; dropping the cookie ends the session.
func (s *sessionService) Close(ctx context.Context, identity models.Identity) error {
	if s.registry == nil || identity.SessionID == "" {
		return nil
	}

	if err := s.registry.Revoke(ctx, identity.SessionID); err != nil {
		logger.FromContext(ctx).Err(err).Str("session_id", identity.SessionID).Msg("error revoking session")
		return err
	}
	return nil
}
