package service

import (
	"context"

	"github.com/MKhiriev/go-material-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for registration and
// authentication against the remote server.
type ClientAuthService interface {
	// Register creates a new account on the server and opens a session for it.
	// Credentials are checked locally first so that obviously invalid input
	// never reaches the network.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates the user against the server and opens a session.
	// Returns the token the server issued together with the values decoded
	// from its claims.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// Logout forgets the current session token.
	Logout()

	// Session returns the current session and whether it is still usable.
	// An expired token counts as no session.
	Session() (models.Token, bool)
}

// ClientMaterialService defines the client-side contract for submitting
// material values and browsing the history of the current account.
type ClientMaterialService interface {
	// Submit checks the raw form locally and sends it to the server. Invalid
	// input is reported with ErrInvalidMaterialInput without a network call.
	Submit(ctx context.Context, form models.MaterialForm) (models.Submission, error)

	// History returns every record of the current account in submission order.
	History(ctx context.Context) ([]models.MaterialRecord, error)
}

// ClientAppInfoService exposes information about the remote server.
type ClientAppInfoService interface {
	// ServerVersion returns the version string the server reports.
	ServerVersion(ctx context.Context) (string, error)
}
