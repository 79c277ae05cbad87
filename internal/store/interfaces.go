// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements asset persistence on top of database/sql.
//
// Two backends are supported and selected from the DSN: PostgreSQL through
// the pgx stdlib driver and SQLite through go-sqlite3. Queries are built with
// squirrel so that the same repository code emits the placeholder format of
// either dialect. The schema is created by the goose migrations embedded in
// the migrations package.
package store

import (
	"context"

	"github.com/MKhiriev/go-asset-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/asset_repository_mock.go -package=mock

// AssetRepository provides access to the "assets" table.
type AssetRepository interface {
	// SaveAssets inserts all assets in a single transaction. Either every
	// asset is stored or none is. A unique violation on asset_name is
	// reported as [ErrAssetAlreadyExists].
	SaveAssets(ctx context.Context, assets ...models.Asset) error

	// GetAllAssets returns every stored asset in insertion order.
	GetAllAssets(ctx context.Context) ([]models.Asset, error)

	// GetAssetByName returns the asset with the given name or
	// [ErrAssetNotFound].
	GetAssetByName(ctx context.Context, name string) (models.Asset, error)

	// FindExistingNames returns the subset of names that are already stored.
	FindExistingNames(ctx context.Context, names ...string) (map[string]struct{}, error)
}

// ErrorClassificator inspects driver errors returned by the database.
type ErrorClassificator interface {
	// IsUniqueViolation reports whether err was caused by a unique or
	// primary key constraint.
	IsUniqueViolation(err error) bool
}
