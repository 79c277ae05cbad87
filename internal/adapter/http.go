package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-asset-keeper/internal/config"
	"github.com/MKhiriev/go-asset-keeper/internal/logger"
	"github.com/MKhiriev/go-asset-keeper/internal/utils"
	"github.com/MKhiriev/go-asset-keeper/models"
)

type httpAssetAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPAssetAdapter builds an [AssetAdapter] for the server at
// cfg.ServerURL. A scheme-less address is treated as http.
func NewHTTPAssetAdapter(cfg config.ClientConfig, logger *logger.Logger) (AssetAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}

	return &httpAssetAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAssetAdapter) ListAssets(ctx context.Context) ([]models.Asset, error) {
	var result models.AssetsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/assets")
	if err != nil {
		return nil, fmt.Errorf("list assets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if result.Assets == nil {
		result.Assets = []models.Asset{}
	}
	return result.Assets, nil
}

func (h *httpAssetAdapter) GetAsset(ctx context.Context, name string) (models.Asset, error) {
	var asset models.Asset

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		SetResult(&asset).
		Get("/assets/{name}")
	if err != nil {
		return models.Asset{}, fmt.Errorf("get asset request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Asset{}, err
	}

	return asset, nil
}

func (h *httpAssetAdapter) CreateAssets(ctx context.Context, assets ...models.Asset) (models.BatchReport, error) {
	var report models.BatchReport

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AssetsRequest{Assets: assets}).
		SetError(&report).
		Post("/assets")
	if err != nil {
		return models.BatchReport{}, fmt.Errorf("create assets request: %w", err)
	}

	// a rejected batch is the only 400 answered with JSON
	if resp.StatusCode() == http.StatusBadRequest && len(report.Assets) > 0 {
		h.logger.Debug().Str("func", "*httpAssetAdapter.CreateAssets").Int("size", len(assets)).Msg("batch rejected by server")
		return report, ErrBatchRejected
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BatchReport{}, err
	}

	return models.BatchReport{}, nil
}

func (h *httpAssetAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
