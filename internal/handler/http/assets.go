// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-asset-keeper/internal/app"
	"github.com/MKhiriev/go-asset-keeper/internal/logger"
	"github.com/MKhiriev/go-asset-keeper/internal/service"
	"github.com/MKhiriev/go-asset-keeper/internal/utils"
	"github.com/MKhiriev/go-asset-keeper/models"
	"github.com/go-chi/chi/v5"
)

const assetNameParam = "name"

func (h *Handler) listAssets(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	assets, err := h.services.AssetService.ListAssets(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAssets").Msg("error listing assets")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.AssetsResponse{Assets: assets}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listAssets").Msg("error writing response")
	}
}

func (h *Handler) getAsset(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	name := chi.URLParam(r, assetNameParam)

	asset, err := h.services.AssetService.GetAsset(r.Context(), name)
	if err != nil {
		if statusFromError(err) == http.StatusNotFound {
			log.Debug().Str("func", "*Handler.getAsset").Str("asset_name", name).Msg("asset not found")
		} else {
			log.Err(err).Str("func", "*Handler.getAsset").Str("asset_name", name).Msg("error getting asset")
		}
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, asset, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getAsset").Msg("error writing response")
	}
}

func (h *Handler) createAssets(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.AssetsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createAssets").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	report, err := h.services.AssetService.CreateAssets(r.Context(), request.Assets...)
	if errors.Is(err, service.ErrBatchRejected) {
		if _, err = utils.WriteJSON(w, report, http.StatusBadRequest); err != nil {
			log.Err(err).Str("func", "*Handler.createAssets").Msg("error writing response")
		}
		return
	}
	if err != nil {
		log.Err(err).Str("func", "*Handler.createAssets").Msg("error creating assets")
		writeError(w, err)
		return
	}

	log.Info().Str("func", "*Handler.createAssets").Int("size", len(request.Assets)).Msg("assets created")
	w.WriteHeader(http.StatusCreated)
}

// methodNotAllowed answers verbs the asset resources deliberately reject.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("func", "*Handler.methodNotAllowed").
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not allowed")
	http.Error(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
