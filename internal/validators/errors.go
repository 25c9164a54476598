package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID                 = errors.New("invalid user ID")
	ErrNegativeInitialMaterial       = errors.New("initial material must not be negative")
	ErrNegativeMaterialUsed          = errors.New("material used must not be negative")
	ErrNonPositiveMaterialPerProduct = errors.New("material per product must be greater than zero")

	ErrEmptyLogin      = errors.New("login is required")
	ErrLoginTooLong    = errors.New("login is too long")
	ErrInvalidLogin    = errors.New("login contains forbidden characters")
	ErrEmptyPassword   = errors.New("password is required")
	ErrPasswordTooLong = errors.New("password is too long")
)
