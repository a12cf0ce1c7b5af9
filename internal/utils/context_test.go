package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-ads-board/models"
	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "identity", IdentityCtxKey.String())
}

func TestGetIdentityFromContext_Success(t *testing.T) {
	want := models.Identity{UserID: 42, IsAdmin: true, SessionID: "sid"}
	ctx := WithIdentity(context.Background(), want)

	got, ok := GetIdentityFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, want, got)
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	got, ok := GetIdentityFromContext(context.Background())

	assert.False(t, ok)
	assert.Equal(t, models.Identity{}, got)
}

func TestGetIdentityFromContext_Anonymous(t *testing.T) {
	ctx := WithIdentity(context.Background(), models.Identity{})

	_, ok := GetIdentityFromContext(ctx)

	assert.False(t, ok)
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, int64(7))

	_, ok := GetIdentityFromContext(ctx)

	assert.False(t, ok)
}
