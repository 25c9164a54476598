package validators

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-material-keeper/models"
)

const (
	FieldLogin    = "login"
	FieldPassword = "password"
)

const (
	// MaxLoginLength is the maximum login length in characters.
	MaxLoginLength = 15
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if err := validateLogin(user.Login); err != nil {
				return err
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
			if len(user.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		case FieldUserID:
			if user.UserID <= 0 {
				return ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateLogin(login string) error {
	if strings.TrimSpace(login) == "" {
		return ErrEmptyLogin
	}
	if utf8.RuneCountInString(login) > MaxLoginLength {
		return ErrLoginTooLong
	}
	for _, r := range login {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return ErrInvalidLogin
		}
	}

	return nil
}
