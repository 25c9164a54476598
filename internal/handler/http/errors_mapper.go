package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-material-keeper/internal/app"
	"github.com/MKhiriev/go-material-keeper/internal/service"
	"github.com/MKhiriev/go-material-keeper/internal/store"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is searched in order: service errors wrap store errors, so
// the more specific entries come first.
var errorResponses = []errorResponse{
	{service.ErrInvalidMaterialInput, http.StatusBadRequest, app.MsgInvalidMaterialInput},
	{store.ErrAccountNotFound, http.StatusUnauthorized, app.MsgAccountNotFound},
	{service.ErrMaterialNotSaved, http.StatusInternalServerError, app.MsgMaterialNotSaved},
	{service.ErrHistoryNotLoaded, http.StatusInternalServerError, app.MsgHistoryNotLoaded},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
	{service.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgStorageUnavailable},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError, app.MsgInternalServerError},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
}

func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError answers a JSON API request with the plain-text message and
// status mapped from err.
func writeError(w http.ResponseWriter, err error) {
	status, message := responseFromError(err)
	http.Error(w, message, status)
}
