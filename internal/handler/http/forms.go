package http

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ads-board/models"
)

// Form names reported in [models.FormView.Form].
const (
	formRegister    = "register"
	formLogin       = "login"
	formCreateAd    = "create_ad"
	formEditAd      = "edit_ad"
	formEditProfile = "edit_profile"
	formEditUser    = "edit_user"
)

// Form field names.
const (
	fieldLogin    = "login"
	fieldPassword = "password"
	fieldFullName = "fullname"
	fieldEmail    = "email"
	fieldAbout    = "about"
	fieldAvatar   = "avatar"
	fieldTitle    = "title"
	fieldContent  = "content"
)

const multipartMemory = 1 << 20

// registerValues pre-fills the register form after a failed submission.
// The password is never echoed back.
type registerValues struct {
	Login    string `json:"login"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	About    string `json:"about"`
}

type loginValues struct {
	Login string `json:"login"`
}

type profileValues struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	About    string `json:"about"`
}

func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}
	return id, nil
}

// parseForm accepts both multipart and url-encoded bodies. The body is
// capped at MaxUploadSize. The media type picks the parser so that a read
// error on a url-encoded body is never mistaken for an empty form.
func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request) error {
	if h.settings.MaxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.settings.MaxUploadSize)
	}

	var err error
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(multipartMemory)
	} else {
		err = r.ParseForm()
	}

	var tooLarge *http.MaxBytesError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &tooLarge):
		return fmt.Errorf("%w: %w", ErrRequestTooLarge, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}
}

// formAvatar returns the uploaded avatar, or nil when the form carries no
// file. Url-encoded forms never carry one. The returned func releases the
// file and is never nil.
func formAvatar(r *http.Request) (*models.Upload, func(), error) {
	file, header, err := r.FormFile(fieldAvatar)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	return &models.Upload{FileName: header.Filename, Content: file}, func() { file.Close() }, nil
}

func formValue(r *http.Request, field string) string {
	return strings.TrimSpace(r.PostFormValue(field))
}

func formDraft(r *http.Request) models.AdDraft {
	return models.AdDraft{
		Title:   formValue(r, fieldTitle),
		Content: formValue(r, fieldContent),
	}
}

func formProfile(r *http.Request) models.ProfileUpdate {
	return models.ProfileUpdate{
		FullName: formValue(r, fieldFullName),
		Email:    formValue(r, fieldEmail),
		About:    formValue(r, fieldAbout),
	}
}

func profileFormValues(update models.ProfileUpdate) profileValues {
	return profileValues{FullName: update.FullName, Email: update.Email, About: update.About}
}
