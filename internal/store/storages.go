package store

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-material-keeper/internal/config"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
)

// Storages bundles every repository over one shared connection pool.
type Storages struct {
	UserRepository     UserRepository
	MaterialRepository MaterialRepository

	db     *DB
	closed atomic.Bool
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to storage: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		return nil, errors.Join(err, db.Close())
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		MaterialRepository: NewMaterialRepository(db, log),
		db:                 db,
	}
}

// Ping implements [HealthChecker].
func (s *Storages) Ping(ctx context.Context) error {
	if s.closed.Load() {
		return ErrStorageClosed
	}

	if err := s.db.PingContext(ctx); err != nil {
		return wrapQueryError(err)
	}

	return nil
}

// Close releases the connection pool. It is safe to call more than once.
func (s *Storages) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	s.db.logger.Info().Str("func", "*Storages.Close").Msg("closing storage")
	return s.db.Close()
}
