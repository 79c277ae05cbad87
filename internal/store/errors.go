package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAssetNotFound is returned when no asset with the requested name
	// exists in the database.
	ErrAssetNotFound = errors.New("asset was not found")

	// ErrAssetAlreadyExists is returned when a bulk insert violates the
	// unique constraint on asset_name. The whole batch is rolled back.
	ErrAssetAlreadyExists = errors.New("asset already exists")

	// ErrUnsupportedDSN is returned when the configured DSN matches neither
	// a PostgreSQL nor an SQLite connection string.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single asset row fails.
	ErrScanningRow = errors.New("failed to scan asset row")

	// ErrScanningRows is returned when iterating over asset rows fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan asset rows")
)
