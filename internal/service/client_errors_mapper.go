// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-material-keeper/internal/adapter"
	"github.com/MKhiriev/go-material-keeper/internal/app"
	"github.com/MKhiriev/go-material-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrNoToken):
		return ErrNotAuthenticated

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided, app.MsgNoUserIDProvided:
			return ErrInvalidDataProvided
		case app.MsgInvalidMaterialInput:
			return ErrInvalidMaterialInput
		}

	case errors.Is(err, adapter.ErrUnprocessableEntity):
		return ErrInvalidMaterialInput

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrWrongPassword
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		case app.MsgTokenIsExpiredOrInvalid:
			return ErrTokenIsExpiredOrInvalid
		case app.MsgAccountNotFound:
			return store.ErrAccountNotFound
		}
		return ErrNotAuthenticated

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgLoginAlreadyExists {
			return store.ErrLoginAlreadyExists
		}

	case errors.Is(err, adapter.ErrInternalServerError):
		switch msg {
		case app.MsgMaterialNotSaved:
			return ErrMaterialNotSaved
		case app.MsgHistoryNotLoaded:
			return ErrHistoryNotLoaded
		}
		return ErrServerError

	case errors.Is(err, adapter.ErrServiceUnavailable):
		return ErrStorageUnavailable
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
