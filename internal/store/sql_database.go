package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-material-keeper/internal/config"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/migrations"
	"github.com/Masterminds/squirrel"
)

// DB wraps a *sql.DB together with everything the repositories need to talk
// to one concrete dialect: the squirrel builder with the right placeholder
// format and the driver-specific error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            squirrel.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the database the DSN points to. postgres:// and postgresql://
// URLs (or keyword/value strings with a host) go to PostgreSQL through pgx,
// everything else is treated as an SQLite file or sqlite:// URL.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch dialectFromDSN(cfg.DSN) {
	case migrations.DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

func newDB(conn *sql.DB, dialect string, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder squirrel.PlaceholderFormat = squirrel.Question
	if dialect == migrations.DialectPostgres {
		placeholder = squirrel.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            squirrel.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Dialect reports the migrations dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate brings the schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	if err := migrations.Migrate(ctx, db.DB, db.dialect); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Str("dialect", db.dialect).Msg("error applying migrations")
		return err
	}

	db.logger.Info().Str("func", "*DB.Migrate").Str("dialect", db.dialect).Msg("migrations applied")
	return nil
}

func (db *DB) violation(err error) ConstraintViolation {
	if db.errorClassificator == nil {
		return NoViolation
	}
	return db.errorClassificator.Violation(err)
}

func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

func dialectFromDSN(dsn string) string {
	lower := strings.ToLower(strings.TrimSpace(dsn))

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return migrations.DialectPostgres
	case strings.Contains(lower, "host=") && !strings.HasPrefix(lower, "file:"):
		return migrations.DialectPostgres
	default:
		return migrations.DialectSQLite
	}
}

func wrapQueryError(err error) error {
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
