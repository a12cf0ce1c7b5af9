package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ads-board/internal/handler/rpc"
	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/mock"
	"github.com/MKhiriev/go-ads-board/internal/service"
	"github.com/MKhiriev/go-ads-board/internal/store"
	"github.com/MKhiriev/go-ads-board/models"
)

const testCookie = "session"

var (
	alice = models.Identity{UserID: 1, SessionID: "sid-alice"}
	root  = models.Identity{UserID: 9, IsAdmin: true, SessionID: "sid-root"}
)

type fixture struct {
	auth     *mock.MockAuthService
	sessions *mock.MockSessionService
	ads      *mock.MockAdService
	users    *mock.MockUserService
	info     *mock.MockAppInfoService

	router http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		auth:     mock.NewMockAuthService(ctrl),
		sessions: mock.NewMockSessionService(ctrl),
		ads:      mock.NewMockAdService(ctrl),
		users:    mock.NewMockUserService(ctrl),
		info:     mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:    f.auth,
		SessionService: f.sessions,
		AdService:      f.ads,
		UserService:    f.users,
		AppInfoService: f.info,
	}
	dispatcher := rpc.NewDispatcher(f.ads, f.users, logger.Nop())
	settings := Settings{CookieName: testCookie, MaxUploadSize: 1 << 20, RequestTimeout: time.Minute}

	f.router = NewHandler(services, dispatcher, settings, logger.Nop()).Init()
	return f
}

// signIn makes req carry a session cookie resolving to identity.
func (f *fixture) signIn(req *http.Request, identity models.Identity) *http.Request {
	token := "token-" + identity.SessionID
	f.sessions.EXPECT().Resolve(gomock.Any(), token).Return(identity, nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	return req
}

func (f *fixture) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func postForm(target string, values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func decodeForm(t *testing.T, rr *httptest.ResponseRecorder) models.FormView {
	t.Helper()
	var view models.FormView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	return view
}

var listing = models.AdListing{
	Ad:             models.Ad{ID: 3, Title: "sofa", Content: "free", UserID: 1},
	AuthorLogin:    "alice",
	AuthorFullName: "Alice",
	AuthorEmail:    "alice@example.com",
}

func TestBoard_EmailVisibility(t *testing.T) {
	tests := []struct {
		name      string
		identity  *models.Identity
		wantEmail bool
	}{
		{name: "anonymous visitor"},
		{name: "signed-in visitor", identity: &alice, wantEmail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.ads.EXPECT().ListAds(gomock.Any()).Return([]models.AdListing{listing}, nil)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.identity != nil {
				req = f.signIn(req, *tt.identity)
			}
			rr := f.serve(req)
			require.Equal(t, http.StatusOK, rr.Code)

			var body struct {
				Ads      []map[string]any `json:"ads"`
				LoggedIn bool             `json:"logged_in"`
			}
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			require.Len(t, body.Ads, 1)

			_, hasEmail := body.Ads[0]["author_email"]
			assert.Equal(t, tt.wantEmail, hasEmail)
			assert.Equal(t, tt.wantEmail, body.LoggedIn)
			assert.Equal(t, "alice", body.Ads[0]["author"])
		})
	}
}

func TestLogin(t *testing.T) {
	t.Run("success sets cookie and redirects", func(t *testing.T) {
		f := newFixture(t)
		user := models.User{UserID: 1, Login: "alice"}
		expires := time.Now().Add(time.Hour)

		f.auth.EXPECT().Login(gomock.Any(), "alice", "pw1").Return(user, nil)
		f.sessions.EXPECT().Open(gomock.Any(), user).
			Return(models.Session{Identity: alice, Token: "signed", ExpiresAt: expires}, nil)

		rr := f.serve(postForm("/login", url.Values{"login": {"alice"}, "password": {"pw1"}}))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/", rr.Header().Get("Location"))

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, testCookie, cookies[0].Name)
		assert.Equal(t, "signed", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	})

	t.Run("wrong credentials give generic message", func(t *testing.T) {
		f := newFixture(t)
		f.auth.EXPECT().Login(gomock.Any(), "alice", "wrong").Return(models.User{}, service.ErrWrongPassword)

		rr := f.serve(postForm("/login", url.Values{"login": {"alice"}, "password": {"wrong"}}))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		view := decodeForm(t, rr)
		assert.Equal(t, "invalid login/password", view.Error)
		assert.Equal(t, formLogin, view.Form)
		assert.Empty(t, rr.Result().Cookies())
	})
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{name: "redirects to login", wantStatus: http.StatusFound},
		{name: "duplicate login", err: store.ErrLoginAlreadyExists, wantStatus: http.StatusConflict, wantError: "login already exists"},
		{name: "storage failure hidden", err: errors.New("pq: connection refused"), wantStatus: http.StatusInternalServerError, wantError: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			var body bytes.Buffer
			mw := multipart.NewWriter(&body)
			require.NoError(t, mw.WriteField("login", "alice"))
			require.NoError(t, mw.WriteField("password", "pw1"))
			require.NoError(t, mw.WriteField("fullname", "Alice"))
			part, err := mw.CreateFormFile("avatar", "me.png")
			require.NoError(t, err)
			_, _ = part.Write([]byte("png-bytes"))
			require.NoError(t, mw.Close())

			f.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ any, reg models.Registration) (models.User, error) {
					assert.Equal(t, "alice", reg.Login)
					assert.Equal(t, "pw1", reg.Password)
					require.NotNil(t, reg.Avatar)
					assert.Equal(t, "me.png", reg.Avatar.FileName)
					content, _ := io.ReadAll(reg.Avatar.Content)
					assert.Equal(t, "png-bytes", string(content))
					return models.User{UserID: 1, Login: reg.Login}, tt.err
				})

			req := httptest.NewRequest(http.MethodPost, "/register", &body)
			req.Header.Set("Content-Type", mw.FormDataContentType())
			rr := f.serve(req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError == "" {
				assert.Equal(t, "/login", rr.Header().Get("Location"))
				return
			}
			view := decodeForm(t, rr)
			assert.Equal(t, tt.wantError, view.Error)
			assert.NotContains(t, rr.Body.String(), "pw1")
			assert.NotContains(t, rr.Body.String(), "connection refused")
		})
	}
}

func TestRegister_BodyTooLarge(t *testing.T) {
	f := newFixture(t)

	values := url.Values{"login": {"alice"}, "about": {strings.Repeat("x", 2<<20)}}
	rr := f.serve(postForm("/register", values))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestProfileEdits_BodyTooLarge(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		identity models.Identity
	}{
		{name: "own profile", target: "/edit_profile", identity: alice},
		{name: "user by administrator", target: "/edit_user/2", identity: root},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			values := url.Values{"fullname": {"Alice A"}, "about": {strings.Repeat("x", 2<<20)}}
			rr := f.serve(f.signIn(postForm(tt.target, values), tt.identity))

			assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
			assert.Empty(t, rr.Header().Get("Location"))
		})
	}
}

func TestProtectedRoutes_RedirectAnonymous(t *testing.T) {
	routes := []struct{ method, target string }{
		{http.MethodGet, "/create_ad"},
		{http.MethodPost, "/create_ad"},
		{http.MethodGet, "/edit_ad/1"},
		{http.MethodPost, "/delete_ad/1"},
		{http.MethodGet, "/profile"},
		{http.MethodPost, "/edit_profile"},
		{http.MethodGet, "/users"},
		{http.MethodPost, "/delete_user/1"},
		{http.MethodPost, "/delete_ad_admin/1"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			f := newFixture(t)
			rr := f.serve(httptest.NewRequest(route.method, route.target, nil))

			assert.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, "/login", rr.Header().Get("Location"))
		})
	}
}

func TestDeleteAd(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantLocation string
	}{
		{name: "owner", wantStatus: http.StatusFound, wantLocation: "/"},
		{name: "not the owner", err: service.ErrAccessDenied, wantStatus: http.StatusFound, wantLocation: "/"},
		{name: "missing ad", err: store.ErrAdNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.ads.EXPECT().DeleteAd(gomock.Any(), alice, int64(3)).Return(tt.err)

			rr := f.serve(f.signIn(httptest.NewRequest(http.MethodPost, "/delete_ad/3", nil), alice))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantLocation, rr.Header().Get("Location"))
		})
	}
}

func TestDeleteAdAsAdmin(t *testing.T) {
	f := newFixture(t)
	f.ads.EXPECT().DeleteAdAsAdmin(gomock.Any(), root, int64(3)).Return(nil)

	rr := f.serve(f.signIn(httptest.NewRequest(http.MethodPost, "/delete_ad_admin/3", nil), root))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestEditAd(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newFixture(t)
		rr := f.serve(f.signIn(httptest.NewRequest(http.MethodGet, "/edit_ad/abc", nil), alice))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("page pre-fills the form", func(t *testing.T) {
		f := newFixture(t)
		f.ads.EXPECT().GetOwnAd(gomock.Any(), alice, int64(3)).Return(listing.Ad, nil)

		rr := f.serve(f.signIn(httptest.NewRequest(http.MethodGet, "/edit_ad/3", nil), alice))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"form":"edit_ad"`)
		assert.Contains(t, rr.Body.String(), `"title":"sofa"`)
	})

	t.Run("validation error re-renders form", func(t *testing.T) {
		f := newFixture(t)
		draft := models.AdDraft{Title: "", Content: "free"}
		f.ads.EXPECT().EditAd(gomock.Any(), alice, int64(3), draft).
			Return(models.Ad{}, errors.Join(service.ErrInvalidDataProvided, errors.New("title is empty")))

		req := f.signIn(postForm("/edit_ad/3", url.Values{"title": {"  "}, "content": {"free"}}), alice)
		rr := f.serve(req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		view := decodeForm(t, rr)
		assert.Equal(t, formEditAd, view.Form)
		assert.Contains(t, view.Error, "title is empty")
	})
}

func TestCreateAd(t *testing.T) {
	f := newFixture(t)
	draft := models.AdDraft{Title: "sofa", Content: "free"}
	f.ads.EXPECT().CreateAd(gomock.Any(), alice, draft).Return(models.Ad{ID: 3, Title: "sofa", Content: "free", UserID: 1}, nil)

	rr := f.serve(f.signIn(postForm("/create_ad", url.Values{"title": {"sofa"}, "content": {"free"}}), alice))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestUsers_AdminOnly(t *testing.T) {
	f := newFixture(t)
	f.users.EXPECT().ListUsers(gomock.Any(), alice).Return(nil, service.ErrAccessDenied)

	rr := f.serve(f.signIn(httptest.NewRequest(http.MethodGet, "/users", nil), alice))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestEditUser(t *testing.T) {
	f := newFixture(t)
	update := models.ProfileUpdate{FullName: "Bob B", Email: "bob@example.com", About: "hi"}
	f.users.EXPECT().UpdateUser(gomock.Any(), root, int64(2), update).Return(models.User{UserID: 2}, nil)

	values := url.Values{"fullname": {"Bob B"}, "email": {"bob@example.com"}, "about": {"hi"}}
	rr := f.serve(f.signIn(postForm("/edit_user/2", values), root))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/users", rr.Header().Get("Location"))
}

func TestEditProfile(t *testing.T) {
	f := newFixture(t)
	update := models.ProfileUpdate{FullName: "Alice A", Email: "not-an-email"}
	f.users.EXPECT().UpdateProfile(gomock.Any(), alice, update).
		Return(models.User{}, errors.Join(service.ErrInvalidDataProvided, errors.New("invalid email")))

	values := url.Values{"fullname": {"Alice A"}, "email": {"not-an-email"}}
	rr := f.serve(f.signIn(postForm("/edit_profile", values), alice))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	view := decodeForm(t, rr)
	assert.Equal(t, formEditProfile, view.Form)
	assert.Contains(t, rr.Body.String(), `"full_name":"Alice A"`)
}

func TestProfile(t *testing.T) {
	f := newFixture(t)
	f.users.EXPECT().Profile(gomock.Any(), alice).
		Return(models.User{UserID: 1, Login: "alice", PasswordHash: "$2a$secret"}, nil)

	rr := f.serve(f.signIn(httptest.NewRequest(http.MethodGet, "/profile", nil), alice))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"login":"alice"`)
	assert.NotContains(t, rr.Body.String(), "$2a$secret")
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	f.sessions.EXPECT().Close(gomock.Any(), alice).Return(errors.New("redis down"))

	rr := f.serve(f.signIn(httptest.NewRequest(http.MethodGet, "/logout", nil), alice))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookie, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAvatar(t *testing.T) {
	t.Run("streams with sniffed type", func(t *testing.T) {
		f := newFixture(t)
		png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)
		f.users.EXPECT().Avatar(gomock.Any(), int64(1)).Return(io.NopCloser(bytes.NewReader(png)), nil)

		rr := f.serve(httptest.NewRequest(http.MethodGet, "/avatar/1", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "image/png", rr.Header().Get("Content-Type"))
		assert.Equal(t, png, rr.Body.Bytes())
	})

	t.Run("missing avatar", func(t *testing.T) {
		f := newFixture(t)
		f.users.EXPECT().Avatar(gomock.Any(), int64(1)).Return(nil, store.ErrAvatarNotFound)

		rr := f.serve(httptest.NewRequest(http.MethodGet, "/avatar/1", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestVersion(t *testing.T) {
	f := newFixture(t)
	f.info.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppInfoView{Version: "1.2.3"})

	rr := f.serve(httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"version":"1.2.3"}`, rr.Body.String())
}

func TestCallRPC(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		f := newFixture(t)
		rr := f.serve(httptest.NewRequest(http.MethodPost, "/api/rpc", strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"invalid params"}`, rr.Body.String())
	})

	t.Run("anonymous caller", func(t *testing.T) {
		f := newFixture(t)
		f.ads.EXPECT().DeleteAd(gomock.Any(), models.Identity{}, int64(3)).Return(service.ErrUnauthenticated)

		body := `{"method":"post.delete","params":{"id":3}}`
		rr := f.serve(httptest.NewRequest(http.MethodPost, "/api/rpc", strings.NewReader(body)))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"error":"authentication required"}`, rr.Body.String())
	})

	t.Run("signed-in caller", func(t *testing.T) {
		f := newFixture(t)
		f.ads.EXPECT().CreateAd(gomock.Any(), alice, models.AdDraft{Title: "sofa", Content: "free"}).
			Return(models.Ad{ID: 7}, nil)

		body := `{"method":"ad.create","params":{"title":"sofa","content":"free"}}`
		req := f.signIn(httptest.NewRequest(http.MethodPost, "/api/rpc", strings.NewReader(body)), alice)
		rr := f.serve(req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"success":true,"id":7}`, rr.Body.String())
	})
}
