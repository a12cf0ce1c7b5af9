package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/service"
	"github.com/MKhiriev/go-ads-board/internal/utils"
	"github.com/MKhiriev/go-ads-board/models"
)

// withSession resolves the session cookie once per request and stores the
// identity in the request context. A rejected cookie is expired and the
// request continues anonymously. When the session cannot be checked the
// cookie is kept and the request continues anonymously.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.settings.CookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		identity, err := h.services.SessionService.Resolve(ctx, cookie.Value)
		switch {
		case errors.Is(err, service.ErrSessionInvalid), errors.Is(err, service.ErrUnauthenticated):
			logger.FromRequest(r).Debug().Err(err).Msg("session cookie rejected")
			h.clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		case err != nil:
			logger.FromRequest(r).Warn().Err(err).Msg("session could not be checked")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// requireAuthentication redirects anonymous visitors to the login page.
func (h *Handler) requireAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetIdentityFromContext(r.Context()); !ok {
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// identity returns the requester; anonymous visitors get the zero value.
func identity(r *http.Request) models.Identity {
	id, _ := utils.GetIdentityFromContext(r.Context())
	return id
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.settings.CookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.settings.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
