package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-ads-board/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken signs an HS256 session token for identity.
// It returns the compact token and its expiry.
func GenerateSessionToken(issuer string, identity models.Identity, tokenDuration time.Duration, signKey string) (string, time.Time, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" || !identity.IsAuthenticated() {
		return "", time.Time{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	expiresAt := now.Add(tokenDuration)
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(identity.UserID, 10),
			ID:        identity.SessionID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		IsAdmin: identity.IsAdmin,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("error occurred during singing session token: %w", err)
	}

	return tokenString, expiresAt, nil
}

// ValidateAndParseSessionToken verifies the signature, expiry and issuer of
// tokenString and returns the identity it carries.
func ValidateAndParseSessionToken(tokenString, signKey, issuer string) (models.Identity, error) {
	claims := &models.SessionClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Identity{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Identity{}, err
	}
	if userID <= 0 {
		return models.Identity{}, errors.New("empty subject error")
	}

	return models.Identity{
		UserID:    userID,
		IsAdmin:   claims.IsAdmin,
		SessionID: claims.ID,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
