package validators

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-ads-board/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldLogin    = "login"
	FieldPassword = "password"
	FieldFullName = "full_name"
	FieldEmail    = "email"
	FieldAbout    = "about"
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldID       = "id"
)

const (
	maxLoginLength = 64
	maxNameLength  = 255
	maxTitleLength = 255
	maxTextLength  = 10000
)

var loginPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// BoardValidator validates user and ad input of the board.
type BoardValidator struct {
}

func NewBoardValidator() Validator {
	return &BoardValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms of models.Registration, models.ProfileUpdate, models.AdDraft and
// models.Ad are accepted. When no fields are given every field of the type
// is checked.
func (v *BoardValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Registration:
		return v.validateRegistration(value, fields...)
	case *models.Registration:
		return v.validateRegistration(*value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value, fields...)

	case models.AdDraft:
		return v.validateAdDraft(value, fields...)
	case *models.AdDraft:
		return v.validateAdDraft(*value, fields...)

	case models.Ad:
		return v.validateAd(value, fields...)
	case *models.Ad:
		return v.validateAd(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BoardValidator) validateRegistration(r models.Registration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword, FieldFullName, FieldEmail, FieldAbout}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldLogin:
			err = validateLogin(r.Login)
		case FieldPassword:
			if r.Password == "" {
				err = ErrEmptyPassword
			}
		case FieldFullName:
			err = maxLength(FieldFullName, r.FullName, maxNameLength)
		case FieldEmail:
			err = validateEmail(r.Email)
		case FieldAbout:
			err = maxLength(FieldAbout, r.About, maxTextLength)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *BoardValidator) validateProfileUpdate(u models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldEmail, FieldAbout}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldFullName:
			err = maxLength(FieldFullName, u.FullName, maxNameLength)
		case FieldEmail:
			err = validateEmail(u.Email)
		case FieldAbout:
			err = maxLength(FieldAbout, u.About, maxTextLength)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *BoardValidator) validateAdDraft(d models.AdDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTitle:
			if strings.TrimSpace(d.Title) == "" {
				err = ErrEmptyTitle
			} else {
				err = maxLength(FieldTitle, d.Title, maxTitleLength)
			}
		case FieldContent:
			if strings.TrimSpace(d.Content) == "" {
				err = ErrEmptyContent
			} else {
				err = maxLength(FieldContent, d.Content, maxTextLength)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateAd checks a stored ad reference. Only the id is meaningful here;
// title and content are checked through the draft.
func (v *BoardValidator) validateAd(ad models.Ad, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if ad.ID <= 0 {
				return ErrInvalidID
			}
		case FieldTitle, FieldContent:
			if err := v.validateAdDraft(models.AdDraft{Title: ad.Title, Content: ad.Content}, f); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateLogin(login string) error {
	switch {
	case login == "":
		return ErrEmptyLogin
	case len(login) > maxLoginLength:
		return ErrLoginTooLong
	case !loginPattern.MatchString(login):
		return ErrInvalidLogin
	}
	return nil
}

// validateEmail accepts an empty address; a non-empty one must be a bare
// RFC 5322 address without a display name.
func validateEmail(email string) error {
	if email == "" {
		return nil
	}
	if len(email) > maxNameLength {
		return fmt.Errorf("%w: %s", ErrFieldTooLong, FieldEmail)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

func maxLength(field, value string, limit int) error {
	if len(value) > limit {
		return fmt.Errorf("%w: %s", ErrFieldTooLong, field)
	}
	return nil
}
