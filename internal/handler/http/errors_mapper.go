package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-asset-keeper/internal/app"
	"github.com/MKhiriev/go-asset-keeper/internal/service"
	"github.com/MKhiriev/go-asset-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrNoAssetsProvided: http.StatusBadRequest,
	service.ErrBatchRejected:    http.StatusBadRequest,
	service.ErrAssetExists:      http.StatusBadRequest,
	service.ErrAssetNotFound:    http.StatusNotFound,

	store.ErrAssetNotFound:      http.StatusNotFound,
	store.ErrAssetAlreadyExists: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap holds the plain-text body sent for client-facing errors.
// Everything else is answered with app.MsgInternalServerError so that driver
// details never leak into responses.
var errorMessageMap = map[error]string{
	service.ErrNoAssetsProvided: app.MsgNoAssetsProvided,
	service.ErrAssetNotFound:    app.MsgAssetNotFound,
	service.ErrAssetExists:      app.MsgAssetExists,
	store.ErrAssetNotFound:      app.MsgAssetNotFound,
	store.ErrAssetAlreadyExists: app.MsgAssetExists,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return app.MsgInternalServerError
}

// writeError answers the request with the status and message mapped to err.
func writeError(w http.ResponseWriter, err error) {
	http.Error(w, messageFromError(err), statusFromError(err))
}
