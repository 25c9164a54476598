// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// server handlers and by the client when it interprets server replies.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or rendered pages to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording on both
// sides of the wire.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID (e.g.
	// extracted from the JWT claim) but none is present in the request
	// context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgRegistrationFailed is returned when the registration handler
	// encounters an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the login handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgInvalidUsernameOrPassword is shown on the login page when the
	// credentials are rejected.
	MsgInvalidUsernameOrPassword = "Invalid username or password."

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgAccountNotFound is returned when the session belongs to an account
	// that no longer exists.
	MsgAccountNotFound = "account not found"

	// MsgInvalidMaterialInput is shown when any of the three material values
	// is not a number or is out of range.
	MsgInvalidMaterialInput = "Invalid input. Please enter valid numbers."

	// MsgMaterialNotSaved is shown when a submission could not be stored.
	// No report is shown together with it.
	MsgMaterialNotSaved = "An error occurred while saving to the database."

	// MsgHistoryNotLoaded is shown when the history could not be read.
	MsgHistoryNotLoaded = "An error occurred while loading the history."

	// MsgStorageUnavailable is the health endpoint body while storage is down.
	MsgStorageUnavailable = "storage unavailable"

	// MsgHealthy is the health endpoint body while storage is reachable.
	MsgHealthy = "OK"
)
