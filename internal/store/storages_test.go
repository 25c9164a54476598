// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-material-keeper/internal/config"
	"github.com/MKhiriev/go-material-keeper/internal/logger"
	"github.com/MKhiriev/go-material-keeper/migrations"
	"github.com/MKhiriev/go-material-keeper/models"
	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteStorages opens a fresh migrated SQLite database in a temp dir.
func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	dsn := "sqlite://" + filepath.Join(t.TempDir(), "materials.db")
	s, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func createTestUser(t *testing.T, s *Storages, login string) models.User {
	t.Helper()

	user, err := s.UserRepository.CreateUser(context.Background(), models.User{Login: login, PasswordHash: "hash-" + login})
	require.NoError(t, err)
	require.Positive(t, user.UserID)

	return user
}

func TestStorages_SQLite_Dialect(t *testing.T) {
	s := newSQLiteStorages(t)

	assert.Equal(t, migrations.DialectSQLite, s.db.Dialect())
	require.NoError(t, s.Ping(context.Background()))
}

func TestStorages_SQLite_Users(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice")

	t.Run("duplicate login", func(t *testing.T) {
		_, err := s.UserRepository.CreateUser(ctx, models.User{Login: "alice", PasswordHash: "x"})
		require.ErrorIs(t, err, ErrLoginAlreadyExists)
	})

	t.Run("find by login", func(t *testing.T) {
		found, err := s.UserRepository.FindUserByLogin(ctx, models.User{Login: "alice"})
		require.NoError(t, err)

		assert.Equal(t, alice.UserID, found.UserID)
		assert.Equal(t, "hash-alice", found.PasswordHash)
		assert.True(t, alice.CreatedAt.Equal(found.CreatedAt), "want %v, got %v", alice.CreatedAt, found.CreatedAt)
	})

	t.Run("find by id", func(t *testing.T) {
		found, err := s.UserRepository.FindUserByID(ctx, alice.UserID)
		require.NoError(t, err)
		assert.Equal(t, "alice", found.Login)
	})

	t.Run("unknown login", func(t *testing.T) {
		_, err := s.UserRepository.FindUserByLogin(ctx, models.User{Login: "bob"})
		require.ErrorIs(t, err, ErrNoUserWasFound)
	})
}

func TestStorages_SQLite_AppendAndList(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	inputs := [][3]string{
		{"100", "5", "20"},
		{"15", "4", "6"},
		{"10", "2", "15"},
		{"0.3", "0.1", "0.1"},
	}

	var appended []models.MaterialRecord
	for _, in := range inputs {
		rec, err := s.MaterialRepository.Append(ctx, testRecord(alice.UserID, in[0], in[1], in[2]))
		require.NoError(t, err)
		appended = append(appended, rec)
	}

	_, err := s.MaterialRepository.Append(ctx, testRecord(bob.UserID, "1", "1", "1"))
	require.NoError(t, err)

	t.Run("records come back in append order", func(t *testing.T) {
		got, err := s.MaterialRepository.ListFor(ctx, alice.UserID)
		require.NoError(t, err)
		require.Len(t, got, len(inputs))

		for i, rec := range got {
			assert.Equal(t, appended[i].ID, rec.ID)
			assert.Equal(t, alice.UserID, rec.UserID)
			if i > 0 {
				assert.Greater(t, rec.ID, got[i-1].ID)
			}
		}
	})

	t.Run("stored quantities round trip exactly", func(t *testing.T) {
		got, err := s.MaterialRepository.ListFor(ctx, alice.UserID)
		require.NoError(t, err)

		for i, in := range inputs {
			assert.True(t, got[i].InitialMaterial.Equal(decimal.RequireFromString(in[0])), "initial %s", got[i].InitialMaterial)
			assert.True(t, got[i].MaterialPerProduct.Equal(decimal.RequireFromString(in[1])), "per product %s", got[i].MaterialPerProduct)
			assert.True(t, got[i].MaterialUsed.Equal(decimal.RequireFromString(in[2])), "used %s", got[i].MaterialUsed)
			assert.True(t, appended[i].CreatedAt.Equal(got[i].CreatedAt))
		}
	})

	t.Run("accounts are isolated", func(t *testing.T) {
		got, err := s.MaterialRepository.ListFor(ctx, bob.UserID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, bob.UserID, got[0].UserID)
	})

	t.Run("account without records", func(t *testing.T) {
		carol := createTestUser(t, s, "carol")

		got, err := s.MaterialRepository.ListFor(ctx, carol.UserID)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestStorages_SQLite_AppendForMissingAccount(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	_, err := s.MaterialRepository.Append(ctx, testRecord(999, "1", "1", "1"))
	require.ErrorIs(t, err, ErrAccountNotFound)

	got, err := s.MaterialRepository.ListFor(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStorages_Close(t *testing.T) {
	s := newSQLiteStorages(t)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	require.ErrorIs(t, s.Ping(context.Background()), ErrStorageClosed)
}

func TestStorages_InMemory(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: "sqlite://:memory:"}}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	user := createTestUser(t, s, "mem")
	_, err = s.MaterialRepository.Append(context.Background(), testRecord(user.UserID, "5", "1", "1"))
	require.NoError(t, err)

	got, err := s.MaterialRepository.ListFor(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestNewDB_PlaceholderFormat(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{migrations.DialectPostgres, "SELECT id FROM materials WHERE user_id = $1"},
		{migrations.DialectSQLite, "SELECT id FROM materials WHERE user_id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			db := newDB(nil, tt.dialect, nil, logger.Nop())

			query, args, err := db.builder.Select("id").From("materials").Where(squirrel.Eq{"user_id": int64(1)}).ToSql()
			require.NoError(t, err)

			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{int64(1)}, args)
		})
	}
}

func TestStorages_SQLite_FileDSN_History(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + filepath.Join(t.TempDir(), "x.db")

	s, err := NewStorages(ctx, config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	inputs := [][3]string{
		{"0.1", "0.1", "0.1"},
		{"1e3", "2.50", "20.50"},
		{"123456789012345678901234567890.123456789", "0.000001", "0"},
		{"7", "0.5", "7.25"},
	}

	var appended []models.MaterialRecord
	for _, in := range inputs {
		rec, err := s.MaterialRepository.Append(ctx, testRecord(alice.UserID, in[0], in[1], in[2]))
		require.NoError(t, err)
		appended = append(appended, rec)
	}

	_, err = s.MaterialRepository.Append(ctx, testRecord(bob.UserID, "42", "1", "1"))
	require.NoError(t, err)

	_, err = s.MaterialRepository.Append(ctx, testRecord(999, "1", "1", "1"))
	require.ErrorIs(t, err, ErrAccountNotFound)

	got, err := s.MaterialRepository.ListFor(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, got, len(inputs))

	for i, in := range inputs {
		assert.Equal(t, appended[i].ID, got[i].ID)
		assert.Equal(t, decimal.RequireFromString(in[0]).String(), got[i].InitialMaterial.String())
		assert.Equal(t, decimal.RequireFromString(in[1]).String(), got[i].MaterialPerProduct.String())
		assert.Equal(t, decimal.RequireFromString(in[2]).String(), got[i].MaterialUsed.String())
		assert.True(t, appended[i].CreatedAt.Equal(got[i].CreatedAt), "want %v, got %v", appended[i].CreatedAt, got[i].CreatedAt)
	}

	t.Run("quantities are stored as exact text", func(t *testing.T) {
		rows, err := s.db.QueryContext(ctx, "SELECT initial_material, material_used FROM materials WHERE user_id = ? ORDER BY id", alice.UserID)
		require.NoError(t, err)
		defer rows.Close()

		i := 0
		for rows.Next() {
			var initial, used string
			require.NoError(t, rows.Scan(&initial, &used))
			assert.Equal(t, decimal.RequireFromString(inputs[i][0]).String(), initial)
			assert.Equal(t, decimal.RequireFromString(inputs[i][2]).String(), used)
			i++
		}
		require.NoError(t, rows.Err())
		assert.Equal(t, len(inputs), i)
	})

	t.Run("other account sees only its own record", func(t *testing.T) {
		got, err := s.MaterialRepository.ListFor(ctx, bob.UserID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "42", got[0].InitialMaterial.String())
	})

	t.Run("rejected append stores nothing", func(t *testing.T) {
		var count int
		require.NoError(t, s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM materials").Scan(&count))
		assert.Equal(t, len(inputs)+1, count)
	})
}
