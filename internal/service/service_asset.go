package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-asset-keeper/internal/logger"
	"github.com/MKhiriev/go-asset-keeper/internal/store"
	"github.com/MKhiriev/go-asset-keeper/internal/validators"
	"github.com/MKhiriev/go-asset-keeper/models"
)

type assetService struct {
	assetRepository store.AssetRepository
	validator       validators.Validator

	logger *logger.Logger
}

func NewAssetService(repo store.AssetRepository, validator validators.Validator, logger *logger.Logger) AssetService {
	return &assetService{
		assetRepository: repo,
		validator:       validator,
		logger:          logger,
	}
}

func (s *assetService) CreateAssets(ctx context.Context, assets ...models.Asset) (models.BatchReport, error) {
	log := logger.FromContext(ctx)

	if len(assets) == 0 {
		return models.BatchReport{}, ErrNoAssetsProvided
	}

	// stored names always match the name pattern, malformed ones need no lookup
	existing, err := s.assetRepository.FindExistingNames(ctx, wellFormedNames(assets)...)
	if err != nil {
		log.Err(err).Str("func", "assetService.CreateAssets").Msg("error checking existing assets")
		return models.BatchReport{}, fmt.Errorf("%w: %w", ErrCheckingExistence, err)
	}

	report, err := s.validateBatch(ctx, assets, existing)
	if err != nil {
		log.Err(err).Str("func", "assetService.CreateAssets").Msg("error validating assets")
		return models.BatchReport{}, err
	}

	if report.HasErrors() {
		log.Info().Str("func", "assetService.CreateAssets").
			Int("count", len(assets)).Msg("asset batch rejected")
		return report, ErrBatchRejected
	}

	if err = s.assetRepository.SaveAssets(ctx, assets...); err != nil {
		if errors.Is(err, store.ErrAssetAlreadyExists) {
			log.Warn().Err(err).Str("func", "assetService.CreateAssets").Msg("asset was created concurrently")
			return models.BatchReport{}, fmt.Errorf("%w: %w", ErrAssetExists, err)
		}
		log.Err(err).Str("func", "assetService.CreateAssets").Msg("error saving assets")
		return models.BatchReport{}, fmt.Errorf("%w: %w", ErrSavingAssets, err)
	}

	log.Info().Str("func", "assetService.CreateAssets").Int("count", len(assets)).Msg("assets created")
	return models.BatchReport{}, nil
}

// validateBatch builds one report per asset, in input order. Every rule is
// checked so a record can carry several messages.
func (s *assetService) validateBatch(ctx context.Context, assets []models.Asset, existing map[string]struct{}) (models.BatchReport, error) {
	report := models.BatchReport{Assets: make([]models.AssetReport, 0, len(assets))}
	seen := make(map[string]struct{}, len(assets))

	for _, asset := range assets {
		messages := make([]string, 0, 1)

		if err := s.validator.Validate(ctx, asset); err != nil {
			fieldErrs, ok := validators.AsFieldErrors(err)
			if !ok {
				return models.BatchReport{}, err
			}
			messages = append(messages, fieldErrs.Messages()...)
		}

		_, exists := existing[asset.Name]
		_, repeated := seen[asset.Name]
		switch {
		case exists:
			messages = append(messages, ErrAssetExists.Error())
		case repeated:
			messages = append(messages, ErrDuplicateInBatch.Error())
		}
		seen[asset.Name] = struct{}{}

		if len(messages) == 0 {
			messages = append(messages, models.MsgAssetIsValid)
		}

		report.Assets = append(report.Assets, models.AssetReport{Name: asset.Name, Errors: messages})
	}

	return report, nil
}

func (s *assetService) ListAssets(ctx context.Context) ([]models.Asset, error) {
	assets, err := s.assetRepository.GetAllAssets(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "assetService.ListAssets").Msg("error getting assets")
		return nil, fmt.Errorf("%w: %w", ErrGettingAssets, err)
	}

	return assets, nil
}

func (s *assetService) GetAsset(ctx context.Context, name string) (models.Asset, error) {
	if !validators.IsValidAssetName(name) {
		return models.Asset{}, ErrAssetNotFound
	}

	asset, err := s.assetRepository.GetAssetByName(ctx, name)
	if errors.Is(err, store.ErrAssetNotFound) {
		return models.Asset{}, fmt.Errorf("%w: %s", ErrAssetNotFound, name)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "assetService.GetAsset").Str("asset_name", name).Msg("error getting asset")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrGettingAssets, err)
	}

	return asset, nil
}

func wellFormedNames(assets []models.Asset) []string {
	names := make([]string, 0, len(assets))
	seen := make(map[string]struct{}, len(assets))
	for _, asset := range assets {
		if _, ok := seen[asset.Name]; ok || !validators.IsValidAssetName(asset.Name) {
			continue
		}
		seen[asset.Name] = struct{}{}
		names = append(names, asset.Name)
	}
	return names
}
