package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/go-ads-board/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, registration models.Registration) (models.User, error)
	// Login never tells an unknown login apart from a wrong password; both
	// fail with ErrWrongPassword.
	Login(ctx context.Context, login, password string) (models.User, error)
	// EnsureAdmin creates the bootstrap administrator when login is free.
	EnsureAdmin(ctx context.Context, login, password string) error
}

type SessionService interface {
	Open(ctx context.Context, user models.User) (models.Session, error)
	Resolve(ctx context.Context, token string) (models.Identity, error)
	Close(ctx context.Context, identity models.Identity) error
}

// AdService implements the board. Every mutating method authorizes the
// identity itself; callers only pass what was resolved from the session.
type AdService interface {
	ListAds(ctx context.Context) ([]models.AdListing, error)
	GetAd(ctx context.Context, adID int64) (models.Ad, error)
	GetOwnAd(ctx context.Context, identity models.Identity, adID int64) (models.Ad, error)
	CreateAd(ctx context.Context, identity models.Identity, draft models.AdDraft) (models.Ad, error)
	EditAd(ctx context.Context, identity models.Identity, adID int64, draft models.AdDraft) (models.Ad, error)
	DeleteAd(ctx context.Context, identity models.Identity, adID int64) error
	DeleteAdAsAdmin(ctx context.Context, identity models.Identity, adID int64) error
}

type UserService interface {
	Profile(ctx context.Context, identity models.Identity) (models.User, error)
	UpdateProfile(ctx context.Context, identity models.Identity, update models.ProfileUpdate) (models.User, error)
	Avatar(ctx context.Context, userID int64) (io.ReadCloser, error)

	ListUsers(ctx context.Context, identity models.Identity) ([]models.User, error)
	GetUser(ctx context.Context, identity models.Identity, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, identity models.Identity, userID int64, update models.ProfileUpdate) (models.User, error)
	DeleteUser(ctx context.Context, identity models.Identity, userID int64) error
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfoView
}
