// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"
	"time"

	"github.com/MKhiriev/go-ads-board/models"
)

// UserRepository persists board accounts in the "users" table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	// UpdateUser overwrites the profile fields of user.UserID. The avatar is
	// only overwritten when user.Avatar is non-empty.
	UpdateUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, userID int64) error
}

// AdRepository persists ads in the "ads" table.
type AdRepository interface {
	CreateAd(ctx context.Context, ad models.Ad) (models.Ad, error)
	FindAdByID(ctx context.Context, adID int64) (models.Ad, error)
	// ListAds returns every ad joined with its author, ordered by id.
	ListAds(ctx context.Context) ([]models.AdListing, error)
	UpdateAd(ctx context.Context, ad models.Ad) error
	DeleteAd(ctx context.Context, adID int64) error
}

// AvatarStorage stores uploaded avatar files under generated keys.
type AvatarStorage interface {
	// Save stores content and returns the key under which it can be opened.
	// fileName is the client supplied name; it is sanitised and made unique.
	Save(ctx context.Context, fileName string, content io.Reader) (string, error)
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// SessionStorage is a server-side registry of live session IDs, used to
// revoke sessions on logout before their cookie expires.
type SessionStorage interface {
	Register(ctx context.Context, sessionID string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Revoke(ctx context.Context, sessionID string) error
}
