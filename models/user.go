// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents a registered board account.
// PasswordHash holds the bcrypt digest of the password and is never
// serialised into any response.
type User struct {
	// UserID is the store-assigned unique identifier.
	UserID int64 `json:"id"`

	// Login is the unique authentication handle.
	Login string `json:"login"`

	// PasswordHash is the salted one-way hash of the password.
	PasswordHash string `json:"-"`

	// FullName is the display name of the user.
	FullName string `json:"full_name"`

	// Email is the contact address shown to signed-in visitors next to ads.
	Email string `json:"email"`

	// About is free-text self description.
	About string `json:"about"`

	// Avatar is the storage key of the uploaded avatar, empty when none.
	Avatar string `json:"avatar,omitempty"`

	// IsAdmin elevates the account to cross-user delete and edit actions.
	IsAdmin bool `json:"is_admin"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Registration carries the registration form.
type Registration struct {
	Login    string
	Password string
	FullName string
	Email    string
	About    string

	// Avatar is optional.
	Avatar *Upload
}

// ProfileUpdate carries the editable profile fields. Avatar is optional;
// when nil the stored avatar is kept.
type ProfileUpdate struct {
	FullName string
	Email    string
	About    string
	Avatar   *Upload
}
