package service

import (
	"context"

	"github.com/MKhiriev/go-material-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// MaterialService runs material submissions end to end and serves the
// per-account history.
type MaterialService interface {
	// Submit parses and validates the raw form, computes the report and
	// appends the record. Either both a stored record and its report come
	// back or an error does; a failed submission never leaves a record.
	Submit(ctx context.Context, userID int64, form models.MaterialForm) (models.Submission, error)

	// History lists every record of the account in submission order.
	History(ctx context.Context, userID int64) ([]models.MaterialRecord, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService tracks whether storage is reachable.
type HealthService interface {
	// Check probes storage once and records the outcome.
	Check(ctx context.Context) error
	// Healthy reports the outcome of the last Check.
	Healthy() bool
	// OnChange registers fn to be called whenever the health state flips.
	OnChange(fn func(healthy bool))
}
