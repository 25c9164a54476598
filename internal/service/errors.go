package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrInvalidMaterialInput wraps every parse, validation and computation
	// failure of a submission. Nothing is stored when it is returned.
	ErrInvalidMaterialInput = errors.New("invalid material input")

	// ErrMaterialNotSaved wraps storage failures of a submission. The computed
	// report is discarded.
	ErrMaterialNotSaved = errors.New("material record was not saved")

	ErrHistoryNotLoaded = errors.New("material history was not loaded")

	ErrStorageUnavailable = errors.New("storage is unavailable")
)

// Client-side errors.
var (
	ErrRegisterOnServer = errors.New("registration on server failed")
	ErrLoginOnServer    = errors.New("login on server failed")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrServerError      = errors.New("server error")
)
