package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-asset-keeper/internal/config"
	"github.com/MKhiriev/go-asset-keeper/internal/logger"
)

// Storages aggregates the repositories backed by a single database connection.
type Storages struct {
	AssetRepository AssetRepository

	db *DB
}

// NewStorages connects to the database named by cfg.DB.DSN, applies the
// migrations for its dialect and builds the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	dialect, source, err := DetectDialect(cfg.DB.DSN)
	if err != nil {
		log.Err(err).Str("func", "store.NewStorages").Msg("cannot detect database dialect")
		return nil, err
	}

	var db *DB
	switch dialect {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case DialectSQLite:
		db, err = NewConnectSQLite(ctx, source, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "store.NewStorages").Str("dialect", string(dialect)).Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories on an already migrated connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		AssetRepository: NewAssetRepository(db, log),
		db:              db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
