package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name          string
		err           error
		wantClass     ErrorClassification
		wantViolation ConstraintViolation
	}{
		{"nil", nil, NonRetryable, NoViolation},
		{"plain error", errors.New("boom"), NonRetryable, NoViolation},
		{"unique", pgError(pgerrcode.UniqueViolation), NonRetryable, UniqueViolation},
		{"foreign key", pgError(pgerrcode.ForeignKeyViolation), NonRetryable, ForeignKeyViolation},
		{"wrapped foreign key", fmt.Errorf("insert: %w", pgError(pgerrcode.ForeignKeyViolation)), NonRetryable, ForeignKeyViolation},
		{"check", pgError(pgerrcode.CheckViolation), NonRetryable, NoViolation},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable, NoViolation},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable, NoViolation},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable, NoViolation},
		{"syntax", pgError(pgerrcode.SyntaxError), NonRetryable, NoViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantClass, c.Classify(tt.err))
			assert.Equal(t, tt.wantViolation, c.Violation(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name          string
		err           error
		wantClass     ErrorClassification
		wantViolation ConstraintViolation
	}{
		{"nil", nil, NonRetryable, NoViolation},
		{"plain error", errors.New("boom"), NonRetryable, NoViolation},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, Retryable, NoViolation},
		{"locked", sqlite3.Error{Code: sqlite3.ErrLocked}, Retryable, NoViolation},
		{"unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, NonRetryable, UniqueViolation},
		{"foreign key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, NonRetryable, ForeignKeyViolation},
		{"not null", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, NonRetryable, NoViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantClass, c.Classify(tt.err))
			assert.Equal(t, tt.wantViolation, c.Violation(tt.err))
		})
	}
}

func TestDialectFromDSN(t *testing.T) {
	tests := map[string]string{
		"postgres://u:p@localhost:5432/db":  "postgres",
		"postgresql://localhost/db":         "postgres",
		"host=localhost user=u dbname=db":   "postgres",
		"sqlite://materials.db":             "sqlite",
		"materials.db":                      "sqlite",
		"file:materials.db?cache=shared":    "sqlite",
		"/var/lib/material-keeper/data.db":  "sqlite",
	}

	for dsn, want := range tests {
		t.Run(dsn, func(t *testing.T) {
			assert.Equal(t, want, dialectFromDSN(dsn))
		})
	}
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		raw      string
		wantDSN  string
		wantPath string
	}{
		{"sqlite://materials.db", "materials.db?_foreign_keys=on&_busy_timeout=5000", "materials.db"},
		{"sqlite://:memory:", ":memory:?_foreign_keys=on&_busy_timeout=5000", ":memory:"},
		{"data/m.db?_fk=1", "data/m.db?_fk=1&_busy_timeout=5000", "data/m.db"},
		{"file:m.db?cache=shared&_busy_timeout=100", "file:m.db?cache=shared&_busy_timeout=100&_foreign_keys=on", "m.db"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			dsn, path := sqliteDSN(tt.raw)
			assert.Equal(t, tt.wantDSN, dsn)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}
