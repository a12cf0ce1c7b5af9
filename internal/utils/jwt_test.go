package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-ads-board/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "test-issuer"
	testSignKey = "secret-key"
)

func TestGenerateSessionToken_RoundTrip(t *testing.T) {
	identity := models.Identity{UserID: 123, IsAdmin: true, SessionID: "sid-1"}

	token, expiresAt, err := GenerateSessionToken(testIssuer, identity, time.Hour, testSignKey)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	parsed, err := ValidateAndParseSessionToken(token, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, identity, parsed)
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	identity := models.Identity{UserID: 1}

	tests := []struct {
		name     string
		issuer   string
		identity models.Identity
		duration time.Duration
		key      string
	}{
		{name: "empty issuer", identity: identity, duration: time.Hour, key: testSignKey},
		{name: "zero duration", issuer: testIssuer, identity: identity, key: testSignKey},
		{name: "empty key", issuer: testIssuer, identity: identity, duration: time.Hour},
		{name: "anonymous", issuer: testIssuer, duration: time.Hour, key: testSignKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := GenerateSessionToken(tt.issuer, tt.identity, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseSessionToken_WrongKey(t *testing.T) {
	token, _, err := GenerateSessionToken(testIssuer, models.Identity{UserID: 1}, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseSessionToken(token, "other-key", testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseSessionToken_WrongIssuer(t *testing.T) {
	token, _, err := GenerateSessionToken(testIssuer, models.Identity{UserID: 1}, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ValidateAndParseSessionToken(token, testSignKey, "someone-else")
	assert.Error(t, err)
}

func TestValidateAndParseSessionToken_Expired(t *testing.T) {
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateAndParseSessionToken(token, testSignKey, testIssuer)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateAndParseSessionToken_BadSubject(t *testing.T) {
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "not-a-number",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSignKey))
	require.NoError(t, err)

	_, err = ValidateAndParseSessionToken(token, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestValidateAndParseSessionToken_Garbage(t *testing.T) {
	_, err := ValidateAndParseSessionToken("garbage", testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ParseBearerToken("Bearer")
	assert.Error(t, err)

	_, err = ParseBearerToken("")
	assert.Error(t, err)
}
