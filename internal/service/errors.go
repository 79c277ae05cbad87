package service

import "errors"

var (
	ErrNoAssetsProvided = errors.New("no assets provided")
	ErrAssetNotFound    = errors.New("asset not found")
	ErrBatchRejected    = errors.New("asset batch rejected")

	ErrCheckingExistence = errors.New("error checking existing assets")
	ErrSavingAssets      = errors.New("error saving assets")
	ErrGettingAssets     = errors.New("error getting assets")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Record-level errors reported alongside the validator's field errors.
var (
	ErrAssetExists      = errors.New("Asset already exists in the asset store, it cannot be updated using a POST request")
	ErrDuplicateInBatch = errors.New("Asset is duplicated in the request")
)
