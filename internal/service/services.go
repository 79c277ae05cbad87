package service

import (
	"fmt"

	"github.com/MKhiriev/go-asset-keeper/internal/catalog"
	"github.com/MKhiriev/go-asset-keeper/internal/config"
	"github.com/MKhiriev/go-asset-keeper/internal/logger"
	"github.com/MKhiriev/go-asset-keeper/internal/metrics"
	"github.com/MKhiriev/go-asset-keeper/internal/store"
	"github.com/MKhiriev/go-asset-keeper/internal/validators"
)

type Services struct {
	AssetService   AssetService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cat *catalog.Catalog, cfg config.App, m *metrics.Metrics, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	assetService := NewAssetService(storages.AssetRepository, validators.NewAssetValidator(cat), logger)

	return &Services{
		AssetService:   NewAssetMetricsService(m).Wrap(assetService),
		AppInfoService: appInfoService,
	}, nil
}
