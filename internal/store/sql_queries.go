package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-ads-board/models"
)

const (
	usersTable = "users"
	adsTable   = "ads"
)

var userColumns = []string{
	"id",
	"login",
	"password_hash",
	"full_name",
	"email",
	"about",
	"avatar",
	"is_admin",
}

var adColumns = []string{
	"id",
	"title",
	"content",
	"user_id",
}

var adListingColumns = []string{
	"a.id",
	"a.title",
	"a.content",
	"a.user_id",
	"u.login",
	"u.full_name",
	"u.email",
}

func toSQL(builder sq.Sqlizer) (string, []any, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return toSQL(b.Insert(usersTable).
		Columns("login", "password_hash", "full_name", "email", "about", "avatar", "is_admin").
		Values(user.Login, user.PasswordHash, user.FullName, user.Email, user.About, user.Avatar, user.IsAdmin).
		Suffix("RETURNING id"))
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return toSQL(b.Select(userColumns...).
		From(usersTable).
		Where(where))
}

func buildSelectAllUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return toSQL(b.Select(userColumns...).
		From(usersTable).
		OrderBy("id"))
}

func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	update := b.Update(usersTable).
		Set("full_name", user.FullName).
		Set("email", user.Email).
		Set("about", user.About)

	if user.Avatar != "" {
		update = update.Set("avatar", user.Avatar)
	}

	return toSQL(update.Where(sq.Eq{"id": user.UserID}))
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return toSQL(b.Delete(usersTable).Where(sq.Eq{"id": userID}))
}

func buildInsertAdQuery(b sq.StatementBuilderType, ad models.Ad) (string, []any, error) {
	return toSQL(b.Insert(adsTable).
		Columns("title", "content", "user_id").
		Values(ad.Title, ad.Content, ad.UserID).
		Suffix("RETURNING id"))
}

func buildSelectAdQuery(b sq.StatementBuilderType, adID int64) (string, []any, error) {
	return toSQL(b.Select(adColumns...).
		From(adsTable).
		Where(sq.Eq{"id": adID}))
}

// buildSelectAdListingsQuery joins every ad with its author, ordered by id. The author's
// email is always selected; projection happens above the store.
func buildSelectAdListingsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return toSQL(b.Select(adListingColumns...).
		From(adsTable + " a").
		Join(usersTable + " u ON u.id = a.user_id").
		OrderBy("a.id"))
}

func buildUpdateAdQuery(b sq.StatementBuilderType, ad models.Ad) (string, []any, error) {
	return toSQL(b.Update(adsTable).
		Set("title", ad.Title).
		Set("content", ad.Content).
		Where(sq.Eq{"id": ad.ID}))
}

func buildDeleteAdQuery(b sq.StatementBuilderType, adID int64) (string, []any, error) {
	return toSQL(b.Delete(adsTable).Where(sq.Eq{"id": adID}))
}
