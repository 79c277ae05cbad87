package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrInternalServerError = errors.New("internal server error")

	// ErrBatchRejected is returned by CreateAssets together with the
	// per-record report when the server refused the batch.
	ErrBatchRejected = errors.New("asset batch rejected")

	ErrInvalidServerURL = errors.New("invalid server url")
)
