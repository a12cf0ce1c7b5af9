package http

import (
	"bufio"
	"io"
	"net/http"

	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/utils"
	"github.com/MKhiriev/go-ads-board/models"
)

const (
	profilePath = "/profile"
	usersPath   = "/users"
)

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.Profile(r.Context(), identity(r))
	if err != nil {
		h.fail(w, r, err, "", nil)
		return
	}

	utils.WriteJSON(w, models.ProfileView{User: user}, http.StatusOK)
}

func (h *Handler) editProfilePage(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.Profile(r.Context(), identity(r))
	if err != nil {
		h.fail(w, r, err, "", nil)
		return
	}

	utils.WriteJSON(w, models.FormView{Form: formEditProfile, Values: user}, http.StatusOK)
}

func (h *Handler) editProfile(w http.ResponseWriter, r *http.Request) {
	update, release, err := h.profileUpdate(w, r)
	defer release()
	if err != nil {
		h.fail(w, r, err, formEditProfile, profileFormValues(update))
		return
	}

	user, err := h.services.UserService.UpdateProfile(r.Context(), identity(r), update)
	if err != nil {
		h.fail(w, r, err, formEditProfile, profileFormValues(update))
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("profile updated")
	http.Redirect(w, r, profilePath, http.StatusFound)
}

func (h *Handler) users(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context(), identity(r))
	if err != nil {
		h.fail(w, r, err, "", nil)
		return
	}

	utils.WriteJSON(w, models.UsersView{Users: users}, http.StatusOK)
}

func (h *Handler) editUserPage(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "", nil)
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), identity(r), userID)
	if err != nil {
		h.fail(w, r, err, "", nil)
		return
	}

	utils.WriteJSON(w, models.FormView{Form: formEditUser, Values: user}, http.StatusOK)
}

func (h *Handler) editUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "", nil)
		return
	}

	update, release, err := h.profileUpdate(w, r)
	defer release()
	if err != nil {
		h.fail(w, r, err, formEditUser, profileFormValues(update))
		return
	}

	if _, err = h.services.UserService.UpdateUser(r.Context(), identity(r), userID, update); err != nil {
		h.fail(w, r, err, formEditUser, profileFormValues(update))
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", userID).Msg("user updated by administrator")
	http.Redirect(w, r, usersPath, http.StatusFound)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "", nil)
		return
	}

	if err = h.services.UserService.DeleteUser(r.Context(), identity(r), userID); err != nil {
		h.fail(w, r, err, "", nil)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", userID).Msg("user deleted by administrator")
	http.Redirect(w, r, usersPath, http.StatusFound)
}

// avatar streams the stored avatar of a user. The content type is sniffed
// from the first bytes.
func (h *Handler) avatar(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r)
	if err != nil {
		h.fail(w, r, err, "", nil)
		return
	}

	content, err := h.services.UserService.Avatar(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err, "", nil)
		return
	}
	defer content.Close()

	reader := bufio.NewReaderSize(content, 512)
	head, _ := reader.Peek(512)

	w.Header().Set("Content-Type", http.DetectContentType(head))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	if _, err = io.Copy(w, reader); err != nil {
		logger.FromRequest(r).Err(err).Int64("user_id", userID).Msg("avatar stream interrupted")
	}
}

func (h *Handler) profileUpdate(w http.ResponseWriter, r *http.Request) (models.ProfileUpdate, func(), error) {
	if err := h.parseForm(w, r); err != nil {
		return models.ProfileUpdate{}, func() {}, err
	}

	update := formProfile(r)
	avatar, release, err := formAvatar(r)
	update.Avatar = avatar
	return update, release, err
}
