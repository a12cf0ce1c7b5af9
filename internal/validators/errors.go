package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLogin    = errors.New("login is required")
	ErrInvalidLogin  = errors.New("login may contain only letters, digits, '.', '_' and '-'")
	ErrLoginTooLong  = errors.New("login is too long")
	ErrEmptyPassword = errors.New("password is required")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrFieldTooLong  = errors.New("field is too long")
	ErrEmptyTitle    = errors.New("title is required")
	ErrEmptyContent  = errors.New("content is required")
	ErrInvalidID     = errors.New("invalid id")
)
