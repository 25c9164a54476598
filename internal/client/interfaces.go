// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-material-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until the user opens a session or quits.
	LoginFlow(ctx context.Context) (models.Token, error)

	// MainLoop blocks until the user leaves the calculation screens.
	// logout reports whether the session has to be closed.
	MainLoop(ctx context.Context, session models.Token) (logout bool, err error)
}
