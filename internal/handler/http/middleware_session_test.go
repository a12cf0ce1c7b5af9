package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/mock"
	"github.com/MKhiriev/go-ads-board/internal/service"
	"github.com/MKhiriev/go-ads-board/internal/utils"
	"github.com/MKhiriev/go-ads-board/models"
)

func newSessionHandler(t *testing.T) (*Handler, *mock.MockSessionService) {
	sessions := mock.NewMockSessionService(gomock.NewController(t))
	h := &Handler{
		services: &service.Services{SessionService: sessions},
		settings: Settings{CookieName: testCookie},
		logger:   logger.Nop(),
	}
	return h, sessions
}

func TestWithSession(t *testing.T) {
	tests := []struct {
		name        string
		cookie      string
		resolved    models.Identity
		resolveErr  error
		wantSignIn  bool
		wantCleared bool
	}{
		{name: "no cookie"},
		{name: "valid cookie", cookie: "good", resolved: alice, wantSignIn: true},
		{name: "expired cookie", cookie: "stale", resolveErr: service.ErrSessionInvalid, wantCleared: true},
		{name: "forged cookie", cookie: "forged", resolveErr: fmt.Errorf("%w: %w", service.ErrSessionInvalid, errors.New("signature is invalid")), wantCleared: true},
		{name: "session registry unavailable", cookie: "good", resolveErr: errors.New("error checking session: dial tcp: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, sessions := newSessionHandler(t)
			if tt.cookie != "" {
				sessions.EXPECT().Resolve(gomock.Any(), tt.cookie).Return(tt.resolved, tt.resolveErr)
			}

			var got models.Identity
			var signedIn bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, signedIn = utils.GetIdentityFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: testCookie, Value: tt.cookie})
			}
			rr := httptest.NewRecorder()
			h.withSession(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantSignIn, signedIn)
			if tt.wantSignIn {
				assert.Equal(t, tt.resolved, got)
			}

			cookies := rr.Result().Cookies()
			if !tt.wantCleared {
				assert.Empty(t, cookies)
				return
			}
			require.Len(t, cookies, 1)
			assert.Empty(t, cookies[0].Value)
			assert.Negative(t, cookies[0].MaxAge)
		})
	}
}

func TestRequireAuthentication(t *testing.T) {
	h, _ := newSessionHandler(t)
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rr := httptest.NewRecorder()
	h.requireAuthentication(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/profile", nil))
	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req = req.WithContext(utils.WithIdentity(req.Context(), alice))
	h.requireAuthentication(next).ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, called)
}
