package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-asset-keeper/models"
)

const (
	assetsTable = "assets"

	columnID         = "id"
	columnAssetName  = "asset_name"
	columnAssetType  = "asset_type"
	columnAssetClass = "asset_class"
	columnCreatedAt  = "created_at"
)

var assetColumns = []string{columnAssetName, columnAssetType, columnAssetClass, columnCreatedAt}

func buildSelectAllAssetsQuery(builder sq.StatementBuilderType) (string, []any, error) {
	return builder.
		Select(assetColumns...).
		From(assetsTable).
		OrderBy(columnID).
		ToSql()
}

func buildSelectAssetByNameQuery(builder sq.StatementBuilderType, name string) (string, []any, error) {
	return builder.
		Select(assetColumns...).
		From(assetsTable).
		Where(sq.Eq{columnAssetName: name}).
		Limit(1).
		ToSql()
}

func buildSelectExistingNamesQuery(builder sq.StatementBuilderType, names []string) (string, []any, error) {
	return builder.
		Select(columnAssetName).
		From(assetsTable).
		Where(sq.Eq{columnAssetName: names}).
		ToSql()
}

// buildInsertAssetQuery returns a single-row INSERT meant to be prepared once
// and executed for every asset of a batch. Arguments are bound at execution.
func buildInsertAssetQuery(builder sq.StatementBuilderType) (string, error) {
	query, _, err := builder.
		Insert(assetsTable).
		Columns(assetColumns...).
		Values(nil, nil, nil, nil).
		ToSql()
	return query, err
}

func insertAssetArgs(asset models.Asset, createdAt time.Time) []any {
	return []any{asset.Name, string(asset.Type), string(asset.Class), createdAt}
}
