// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-asset-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AssetServiceWrapper

type AssetService interface {
	// CreateAssets validates every asset of the batch and stores all of them
	// in one transaction when none has errors. A rejected batch returns the
	// per-record report in input order together with ErrBatchRejected.
	CreateAssets(ctx context.Context, assets ...models.Asset) (models.BatchReport, error)

	ListAssets(ctx context.Context) ([]models.Asset, error)
	GetAsset(ctx context.Context, name string) (models.Asset, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AssetServiceWrapper defines middleware composition for AssetService.
// Implementations wrap an existing AssetService to add behavior such as
// metrics or logging.
type AssetServiceWrapper interface {
	Wrap(AssetService) AssetService
}
