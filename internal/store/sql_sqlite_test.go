package store

import (
	"context"
	"path/filepath"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ads-board/internal/config"
	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/models"
)

func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.DB{
		DSN: filepath.Join(t.TempDir(), "board.db"),
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "board.db?_foreign_keys=on", withForeignKeys("board.db"))
	assert.Equal(t, "board.db?cache=shared&_foreign_keys=on", withForeignKeys("board.db?cache=shared"))
	assert.Equal(t, "board.db?_fk=1", withForeignKeys("board.db?_fk=1"))
}

func TestNewDB_PlaceholderPerDriver(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{driver: config.DriverPostgres, want: "SELECT id FROM users WHERE id = $1"},
		{driver: config.DriverSQLite, want: "SELECT id FROM users WHERE id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			db := newDB(nil, tt.driver, logger.Nop())

			query, args, err := db.builder.Select("id").From("users").Where(sq.Eq{"id": 1}).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{1}, args)
		})
	}
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLite_UserAndAdLifecycle(t *testing.T) {
	db := newSQLiteDB(t)
	users := NewUserRepository(db, logger.Nop())
	ads := NewAdRepository(db, logger.Nop())
	ctx := context.Background()

	alice, err := users.CreateUser(ctx, models.User{Login: "alice", PasswordHash: "h", FullName: "Alice", Email: "a@example.com"})
	require.NoError(t, err)
	require.NotZero(t, alice.UserID)

	_, err = users.CreateUser(ctx, models.User{Login: "alice", PasswordHash: "h2"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)

	first, err := ads.CreateAd(ctx, models.Ad{Title: "Bike", Content: "Red", UserID: alice.UserID})
	require.NoError(t, err)
	second, err := ads.CreateAd(ctx, models.Ad{Title: "Lamp", Content: "Desk", UserID: alice.UserID})
	require.NoError(t, err)

	listings, err := ads.ListAds(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, first.ID, listings[0].ID, "ordered by id")
	assert.Equal(t, second.ID, listings[1].ID)
	assert.Equal(t, "alice", listings[0].AuthorLogin)
	assert.Equal(t, "a@example.com", listings[0].AuthorEmail)

	require.NoError(t, users.UpdateUser(ctx, models.User{UserID: alice.UserID, FullName: "Alice B", Email: "b@example.com"}))
	found, err := users.FindUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice B", found.FullName)
	assert.Empty(t, found.Avatar)

	require.NoError(t, users.DeleteUser(ctx, alice.UserID))

	_, err = ads.FindAdByID(ctx, first.ID)
	assert.ErrorIs(t, err, ErrAdNotFound, "ads cascade with their owner")

	listings, err = ads.ListAds(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)
}
