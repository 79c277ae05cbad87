package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-asset-keeper/internal/logger"
	"github.com/MKhiriev/go-asset-keeper/models"
)

type assetRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewAssetRepository(db *DB, log *logger.Logger) AssetRepository {
	return &assetRepository{
		DB:     db,
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *assetRepository) SaveAssets(ctx context.Context, assets ...models.Asset) error {
	log := logger.FromContext(ctx)

	if len(assets) == 0 {
		return nil
	}

	query, err := buildInsertAssetQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "assetRepository.SaveAssets").Msg("error building insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "assetRepository.SaveAssets").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "assetRepository.SaveAssets").Msg("error preparing insert statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer stmt.Close()

	createdAt := r.now()
	for _, asset := range assets {
		if _, err = stmt.ExecContext(ctx, insertAssetArgs(asset, createdAt)...); err != nil {
			if r.errorClassificator.IsUniqueViolation(err) {
				log.Warn().Err(err).Str("func", "assetRepository.SaveAssets").
					Str("asset_name", asset.Name).Msg("asset already exists, batch rolled back")
				return fmt.Errorf("%w: %s", ErrAssetAlreadyExists, asset.Name)
			}
			log.Err(err).Str("func", "assetRepository.SaveAssets").
				Str("asset_name", asset.Name).Msg("error inserting asset")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "assetRepository.SaveAssets").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "assetRepository.SaveAssets").Int("count", len(assets)).Msg("assets saved")
	return nil
}

func (r *assetRepository) GetAllAssets(ctx context.Context) ([]models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllAssetsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "assetRepository.GetAllAssets").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "assetRepository.GetAllAssets").Msg("error selecting assets")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	assets := make([]models.Asset, 0)
	for rows.Next() {
		var asset models.Asset
		if err = rows.Scan(&asset.Name, &asset.Type, &asset.Class, &asset.CreatedAt); err != nil {
			log.Err(err).Str("func", "assetRepository.GetAllAssets").Msg("error scanning asset row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		assets = append(assets, asset)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "assetRepository.GetAllAssets").Msg("error iterating asset rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return assets, nil
}

func (r *assetRepository) GetAssetByName(ctx context.Context, name string) (models.Asset, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAssetByNameQuery(r.builder, name)
	if err != nil {
		log.Err(err).Str("func", "assetRepository.GetAssetByName").Msg("error building select query")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var asset models.Asset
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&asset.Name, &asset.Type, &asset.Class, &asset.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Asset{}, ErrAssetNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "assetRepository.GetAssetByName").Str("asset_name", name).Msg("error selecting asset")
		return models.Asset{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return asset, nil
}

func (r *assetRepository) FindExistingNames(ctx context.Context, names ...string) (map[string]struct{}, error) {
	log := logger.FromContext(ctx)

	existing := make(map[string]struct{})
	if len(names) == 0 {
		return existing, nil
	}

	query, args, err := buildSelectExistingNamesQuery(r.builder, names)
	if err != nil {
		log.Err(err).Str("func", "assetRepository.FindExistingNames").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "assetRepository.FindExistingNames").Msg("error selecting existing names")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			log.Err(err).Str("func", "assetRepository.FindExistingNames").Msg("error scanning name")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		existing[name] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "assetRepository.FindExistingNames").Msg("error iterating name rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return existing, nil
}
