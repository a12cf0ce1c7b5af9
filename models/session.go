// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Identity is the authenticated requester resolved once per request from the
// session cookie. The zero value is an anonymous visitor.
type Identity struct {
	// UserID is the signed-in user, 0 for anonymous visitors.
	UserID int64

	// IsAdmin is the administrator flag cached in the session at login.
	IsAdmin bool

	// SessionID identifies the session for server-side revocation.
	SessionID string
}

// IsAuthenticated reports whether the identity belongs to a signed-in user.
func (i Identity) IsAuthenticated() bool {
	return i.UserID != 0
}

// Session is a freshly opened session ready to be handed to the client.
type Session struct {
	Identity

	// Token is the signed value stored in the session cookie.
	Token string

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time
}
