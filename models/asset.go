// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AssetType is the kind of tracked asset, e.g. "satellite" or "antenna".
// The set of accepted values is defined by the asset catalog.
type AssetType string

// AssetClass is the model family of an asset. Which classes are allowed
// depends on the asset's [AssetType].
type AssetClass string

const (
	Satellite AssetType = "satellite"
	Antenna   AssetType = "antenna"
)

const (
	Dove     AssetClass = "dove"
	SkySat   AssetClass = "skysat"
	RapidEye AssetClass = "rapideye"
	Dish     AssetClass = "dish"
	Yagi     AssetClass = "yagi"
)

// Asset is a single satellite or antenna record.
//
// Name is the natural key: it is unique across the asset store and is the
// only identifier exposed through the API. Assets are never mutated after
// they were created.
type Asset struct {
	// Name uniquely identifies the asset. Must match ^[\w\-]{4,64}$.
	Name string `json:"asset_name" validate:"asset_name"`

	// Type is the asset kind.
	Type AssetType `json:"asset_type" validate:"asset_type"`

	// Class is the model family; must be allowed for Type.
	Class AssetClass `json:"asset_class"`

	// CreatedAt is set by the store on insert and is not part of the API.
	CreatedAt time.Time `json:"-"`
}
