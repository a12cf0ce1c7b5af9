// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by the signed session cookie.
//
// The "sub" claim holds the user ID, "jti" the session ID and "adm" the
// administrator flag cached at login.
type SessionClaims struct {
	jwt.RegisteredClaims

	// IsAdmin is the administrator flag at the time the session was opened.
	IsAdmin bool `json:"adm,omitempty"`
}

// GetUserID extracts the user identifier from the "sub" claim.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (c *SessionClaims) GetUserID() (int64, error) {
	userIDString, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}
