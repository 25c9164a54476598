package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-material-keeper/internal/config"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/migrations"
)

// sqliteBusyTimeout is how long a connection waits on a locked database, in ms.
const sqliteBusyTimeout = "5000"

func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn, path := sqliteDSN(cfg.DSN)

	// db will be in file
	if !isInMemory(dsn, path) {
		if err := createLocalDBDirIfNotExists(path); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database directory")
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// every connection to :memory: opens its own database
	if isInMemory(dsn, path) {
		conn.SetMaxOpenConns(1)
		conn.SetMaxIdleConns(1)
		conn.SetConnMaxLifetime(0)
		conn.SetConnMaxIdleTime(0)
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return newDB(conn, migrations.DialectSQLite, NewSQLiteErrorClassifier(), log), nil
}

// sqliteDSN turns a configured DSN into one go-sqlite3 accepts and returns the
// database path separately. Foreign keys are always switched on.
func sqliteDSN(raw string) (dsn string, path string) {
	dsn = strings.TrimSpace(raw)
	for _, prefix := range []string{"sqlite3://", "sqlite://"} {
		if strings.HasPrefix(strings.ToLower(dsn), prefix) {
			dsn = dsn[len(prefix):]
			break
		}
	}

	path, query, _ := strings.Cut(dsn, "?")
	path = strings.TrimPrefix(path, "file:")

	params := []string{}
	if query != "" {
		params = append(params, query)
	}
	if !strings.Contains(query, "_foreign_keys") && !strings.Contains(query, "_fk") {
		params = append(params, "_foreign_keys=on")
	}
	if !strings.Contains(query, "_busy_timeout") && !strings.Contains(query, "_timeout") {
		params = append(params, "_busy_timeout="+sqliteBusyTimeout)
	}

	base, _, _ := strings.Cut(dsn, "?")
	return base + "?" + strings.Join(params, "&"), path
}

func isInMemory(dsn, path string) bool {
	return path == ":memory:" || path == "" || strings.Contains(dsn, "mode=memory")
}

func createLocalDBDirIfNotExists(dbFile string) error {
	dir := filepath.Dir(dbFile)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		// if not found - create
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating DB directory: %w", err)
		}
	}

	// directory already exists
	return nil
}
