// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the asset-keeper HTTP API.
//
// [AssetAdapter] hides the transport from the CLI. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that callers
// can use [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-asset-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/asset_adapter_mock.go -package=mock

// AssetAdapter talks to an asset-keeper server.
type AssetAdapter interface {
	// ListAssets returns every stored asset in insertion order.
	ListAssets(ctx context.Context) ([]models.Asset, error)

	// GetAsset returns the asset called name or an error wrapping [ErrNotFound].
	GetAsset(ctx context.Context, name string) (models.Asset, error)

	// CreateAssets submits one batch. When the server rejects it the
	// per-record report is returned together with [ErrBatchRejected].
	CreateAssets(ctx context.Context, assets ...models.Asset) (models.BatchReport, error)

	// ServerVersion returns the version string reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
