// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the material keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-material-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the material
// keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates the account on the server. On success the returned
	// bearer token is stored via SetToken.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates with login and password. On success the returned
	// bearer token is stored via SetToken.
	Login(ctx context.Context, user models.User) (models.User, error)

	// SubmitMaterial sends the three raw values and returns the stored record
	// together with the computed report.
	SubmitMaterial(ctx context.Context, form models.MaterialForm) (models.Submission, error)

	// GetHistory returns every record of the authenticated account in
	// submission order.
	GetHistory(ctx context.Context) ([]models.MaterialRecord, error)

	// GetVersion returns the server application version.
	GetVersion(ctx context.Context) (string, error)
}
