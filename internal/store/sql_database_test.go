// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-asset-keeper/internal/config"
	"github.com/MKhiriev/go-asset-keeper/internal/logger"
	"github.com/MKhiriev/go-asset-keeper/models"
)

func TestDetectDialect(t *testing.T) {
	tests := []struct {
		name        string
		dsn         string
		wantDialect Dialect
		wantSource  string
		wantErr     bool
	}{
		{name: "postgres url", dsn: "postgres://u:p@localhost:5432/assets?sslmode=disable", wantDialect: DialectPostgres, wantSource: "postgres://u:p@localhost:5432/assets?sslmode=disable"},
		{name: "postgresql url", dsn: "postgresql://localhost/assets", wantDialect: DialectPostgres, wantSource: "postgresql://localhost/assets"},
		{name: "keyword dsn", dsn: "host=localhost dbname=assets", wantDialect: DialectPostgres, wantSource: "host=localhost dbname=assets"},
		{name: "sqlite scheme", dsn: "sqlite://./assets.db", wantDialect: DialectSQLite, wantSource: "./assets.db"},
		{name: "sqlite file uri", dsn: "file:assets.db?cache=shared", wantDialect: DialectSQLite, wantSource: "file:assets.db?cache=shared"},
		{name: "empty sqlite path", dsn: "sqlite://", wantErr: true},
		{name: "mysql", dsn: "mysql://localhost/assets", wantErr: true},
		{name: "empty", dsn: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialect, source, err := DetectDialect(tt.dsn)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedDSN)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDialect, dialect)
			assert.Equal(t, tt.wantSource, source)
		})
	}
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.True(t, c.IsUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.True(t, c.IsUniqueViolation(fmt.Errorf("wrapped: %w", pgError(pgerrcode.UniqueViolation))))
	assert.False(t, c.IsUniqueViolation(pgError(pgerrcode.NotNullViolation)))
	assert.False(t, c.IsUniqueViolation(errors.New("plain")))
	assert.False(t, c.IsUniqueViolation(nil))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	pk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
	notNull := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}

	assert.True(t, c.IsUniqueViolation(unique))
	assert.True(t, c.IsUniqueViolation(fmt.Errorf("wrapped: %w", pk)))
	assert.False(t, c.IsUniqueViolation(notNull))
	assert.False(t, c.IsUniqueViolation(errors.New("plain")))
	assert.False(t, c.IsUniqueViolation(nil))
}

func Test_buildQueries_Postgres(t *testing.T) {
	db := newDB(nil, DialectPostgres, logger.Nop())

	query, args, err := buildSelectAllAssetsQuery(db.builder)
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t, "SELECT asset_name, asset_type, asset_class, created_at FROM assets ORDER BY id", query)

	query, args, err = buildSelectAssetByNameQuery(db.builder, "Dove1")
	require.NoError(t, err)
	assert.Equal(t, []any{"Dove1"}, args)
	assert.Contains(t, query, "WHERE asset_name = $1")
	assert.Contains(t, strings.ToUpper(query), "LIMIT 1")

	query, args, err = buildSelectExistingNamesQuery(db.builder, []string{"Dove1", "Dish1"})
	require.NoError(t, err)
	assert.Equal(t, []any{"Dove1", "Dish1"}, args)
	assert.Equal(t, "SELECT asset_name FROM assets WHERE asset_name IN ($1,$2)", query)

	query, err = buildInsertAssetQuery(db.builder)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO assets (asset_name,asset_type,asset_class,created_at) VALUES ($1,$2,$3,$4)", query)
}

func Test_buildQueries_SQLite(t *testing.T) {
	db := newDB(nil, DialectSQLite, logger.Nop())

	query, _, err := buildSelectExistingNamesQuery(db.builder, []string{"Dove1"})
	require.NoError(t, err)
	assert.Equal(t, "SELECT asset_name FROM assets WHERE asset_name IN (?)", query)

	query, err = buildInsertAssetQuery(db.builder)
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO assets (asset_name,asset_type,asset_class,created_at) VALUES (?,?,?,?)", query)
}

func Test_insertAssetArgs(t *testing.T) {
	args := insertAssetArgs(models.Asset{Name: "Dove1", Type: models.Satellite, Class: models.Dove}, fixedNow)
	assert.Equal(t, []any{"Dove1", "satellite", "dove", fixedNow}, args)
}

func TestNewStorages_SQLite(t *testing.T) {
	dsn := "sqlite://" + filepath.Join(t.TempDir(), "assets.db")

	storages, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	require.NotNil(t, storages.AssetRepository)

	assets, err := storages.AssetRepository.GetAllAssets(context.Background())
	require.NoError(t, err)
	assert.Empty(t, assets)
}

func TestNewStorages_UnsupportedDSN(t *testing.T) {
	_, err := NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: "mysql://x"}}, logger.Nop())
	require.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}
