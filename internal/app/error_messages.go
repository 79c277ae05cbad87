// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// asset-keeper HTTP handlers and the CLI client.
//
// All Msg* constants are human-readable strings written into plain-text HTTP
// response bodies. Keeping them in one place keeps the wording consistent
// between the server and the client that parses them.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgNoAssetsProvided is returned for a bulk create with an empty list.
	MsgNoAssetsProvided = "no assets provided"

	// MsgAssetNotFound is returned when no asset has the requested name.
	MsgAssetNotFound = "asset not found"

	// MsgAssetExists is returned when the insert of a validated batch hits a
	// name written concurrently by another request.
	MsgAssetExists = "asset already exists"

	MsgMethodNotAllowed = "method not allowed"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
