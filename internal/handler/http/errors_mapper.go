package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ads-board/internal/app"
	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/service"
	"github.com/MKhiriev/go-ads-board/internal/store"
	"github.com/MKhiriev/go-ads-board/internal/utils"
	"github.com/MKhiriev/go-ads-board/models"
)

const (
	loginPath = "/login"
	boardPath = "/"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,

	ErrInvalidID:       http.StatusBadRequest,
	ErrInvalidForm:     http.StatusBadRequest,
	ErrRequestTooLarge: http.StatusRequestEntityTooLarge,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrAdNotFound:         http.StatusNotFound,
	store.ErrAvatarNotFound:     http.StatusNotFound,
	store.ErrInvalidAvatarKey:   http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text shown to the client. Storage and
// driver errors never reach the response body.
func messageFromError(err error, status int) string {
	switch status {
	case http.StatusBadRequest:
		if errors.Is(err, service.ErrInvalidDataProvided) {
			return err.Error()
		}
		return http.StatusText(status)
	case http.StatusUnauthorized:
		return app.MsgInvalidLoginPassword
	case http.StatusConflict:
		return app.MsgLoginAlreadyExists
	case http.StatusNotFound:
		return app.MsgNotFound
	case http.StatusRequestEntityTooLarge:
		return app.MsgRequestTooLarge
	default:
		return app.MsgInternalServerError
	}
}

// fail writes the response for a failed request. Authentication failures
// redirect to the login page and authorization failures silently redirect
// to the board. Everything else is answered with a status code: as a
// re-rendered form when form is set, as plain text otherwise.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error, form string, values any) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, service.ErrSessionInvalid):
		log.Debug().Err(err).Msg("authentication required, redirecting to login")
		http.Redirect(w, r, loginPath, http.StatusFound)
		return
	case errors.Is(err, service.ErrAccessDenied):
		log.Warn().Err(err).Msg("access denied, redirecting to board")
		http.Redirect(w, r, boardPath, http.StatusFound)
		return
	}

	status := statusFromError(err)
	message := messageFromError(err, status)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if form == "" {
		http.Error(w, message, status)
		return
	}

	utils.WriteJSON(w, models.FormView{Form: form, Values: values, Error: message}, status)
}
