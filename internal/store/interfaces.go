package store

import (
	"context"

	"github.com/MKhiriev/go-material-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts.
type UserRepository interface {
	// CreateUser stores a new account and returns it with UserID and CreatedAt set.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// MaterialRepository is the append-only history of material submissions.
type MaterialRepository interface {
	// Append inserts exactly one record and returns it as stored.
	Append(ctx context.Context, record models.MaterialRecord) (models.MaterialRecord, error)
	// ListFor returns every record of the account in creation order.
	ListFor(ctx context.Context, userID int64) ([]models.MaterialRecord, error)
}

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
