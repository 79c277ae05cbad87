package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-asset-keeper/internal/metrics"
	"github.com/MKhiriev/go-asset-keeper/models"
)

// AssetMetricsService records bulk create outcomes in Prometheus.
type AssetMetricsService struct {
	inner   AssetService
	metrics *metrics.Metrics
}

func NewAssetMetricsService(m *metrics.Metrics) AssetServiceWrapper {
	return &AssetMetricsService{metrics: m}
}

func (s *AssetMetricsService) CreateAssets(ctx context.Context, assets ...models.Asset) (models.BatchReport, error) {
	start := time.Now()
	report, err := s.inner.CreateAssets(ctx, assets...)

	result := metrics.BatchCreated
	invalid := 0
	switch {
	case errors.Is(err, ErrBatchRejected):
		result = metrics.BatchRejected
		for _, r := range report.Assets {
			if !r.IsValid() {
				invalid++
			}
		}
	case err != nil:
		result = metrics.BatchFailed
	}
	s.metrics.ObserveBatch(result, len(assets), invalid, time.Since(start))

	return report, err
}

func (s *AssetMetricsService) ListAssets(ctx context.Context) ([]models.Asset, error) {
	return s.inner.ListAssets(ctx)
}

func (s *AssetMetricsService) GetAsset(ctx context.Context, name string) (models.Asset, error) {
	return s.inner.GetAsset(ctx, name)
}

func (s *AssetMetricsService) Wrap(inner AssetService) AssetService {
	s.inner = inner
	return s
}
