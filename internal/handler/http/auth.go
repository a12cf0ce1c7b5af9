package http

import (
	"net/http"

	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/utils"
	"github.com/MKhiriev/go-ads-board/models"
)

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.FormView{Form: formRegister}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.parseForm(w, r); err != nil {
		h.fail(w, r, err, formRegister, nil)
		return
	}

	avatar, release, err := formAvatar(r)
	defer release()

	values := registerValues{
		Login:    formValue(r, fieldLogin),
		FullName: formValue(r, fieldFullName),
		Email:    formValue(r, fieldEmail),
		About:    formValue(r, fieldAbout),
	}
	if err != nil {
		h.fail(w, r, err, formRegister, values)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, models.Registration{
		Login:    values.Login,
		Password: r.PostFormValue(fieldPassword),
		FullName: values.FullName,
		Email:    values.Email,
		About:    values.About,
		Avatar:   avatar,
	})
	if err != nil {
		h.fail(w, r, err, formRegister, values)
		return
	}

	log.Info().Int64("user_id", user.UserID).Str("login", user.Login).Msg("user registered")
	http.Redirect(w, r, loginPath, http.StatusFound)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.FormView{Form: formLogin}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.parseForm(w, r); err != nil {
		h.fail(w, r, err, formLogin, nil)
		return
	}

	values := loginValues{Login: formValue(r, fieldLogin)}
	user, err := h.services.AuthService.Login(ctx, values.Login, r.PostFormValue(fieldPassword))
	if err != nil {
		h.fail(w, r, err, formLogin, values)
		return
	}

	session, err := h.services.SessionService.Open(ctx, user)
	if err != nil {
		h.fail(w, r, err, formLogin, values)
		return
	}

	log.Info().Int64("user_id", user.UserID).Bool("is_admin", user.IsAdmin).Msg("user logged in")
	h.setSessionCookie(w, session)
	http.Redirect(w, r, boardPath, http.StatusFound)
}

// logout always expires the cookie, even when revocation fails.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if id := identity(r); id.IsAuthenticated() {
		if err := h.services.SessionService.Close(r.Context(), id); err != nil {
			logger.FromRequest(r).Err(err).Msg("session revocation failed")
		}
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, boardPath, http.StatusFound)
}
