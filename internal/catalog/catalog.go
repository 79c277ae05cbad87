// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package catalog holds the table of asset types and the classes each type
// allows.
//
// A [Catalog] is built once at process start, either from the embedded
// default table or from a YAML file with the same shape, and is read-only
// afterwards. It is therefore safe for concurrent use without locking.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/MKhiriev/go-asset-keeper/models"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Catalog is an immutable asset type → allowed classes table.
type Catalog struct {
	types   []models.AssetType
	classes map[models.AssetType][]models.AssetClass
}

type yamlCatalog struct {
	Types []yamlType `yaml:"types"`
}

type yamlType struct {
	Name    string   `yaml:"name"`
	Classes []string `yaml:"classes"`
}

// Default returns the built-in catalog:
// satellite → dove, skysat, rapideye; antenna → dish, yagi.
func Default() *Catalog {
	c, err := Parse(bytes.NewReader(defaultCatalog))
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// Load returns the catalog stored in the YAML file at path, or [Default]
// when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening catalog file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes and checks a YAML catalog.
func Parse(r io.Reader) (*Catalog, error) {
	var raw yamlCatalog
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("error decoding catalog: %w", err)
	}

	if len(raw.Types) == 0 {
		return nil, ErrNoTypes
	}

	c := &Catalog{
		types:   make([]models.AssetType, 0, len(raw.Types)),
		classes: make(map[models.AssetType][]models.AssetClass, len(raw.Types)),
	}
	for _, t := range raw.Types {
		if t.Name == "" {
			return nil, ErrEmptyTypeName
		}
		assetType := models.AssetType(t.Name)
		if _, exists := c.classes[assetType]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateType, t.Name)
		}
		if len(t.Classes) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoClasses, t.Name)
		}

		classes := make([]models.AssetClass, 0, len(t.Classes))
		for _, class := range t.Classes {
			classes = append(classes, models.AssetClass(class))
		}

		c.types = append(c.types, assetType)
		c.classes[assetType] = classes
	}

	return c, nil
}

// Types returns the known asset types in declaration order.
func (c *Catalog) Types() []models.AssetType {
	return slices.Clone(c.types)
}

// IsValidType reports whether t is a known asset type.
func (c *Catalog) IsValidType(t models.AssetType) bool {
	_, ok := c.classes[t]
	return ok
}

// Classes returns the classes allowed for t. ok is false for unknown types.
func (c *Catalog) Classes(t models.AssetType) (classes []models.AssetClass, ok bool) {
	classes, ok = c.classes[t]
	return slices.Clone(classes), ok
}

// IsValidClass reports whether class is allowed for t. It is always false
// for an unknown type.
func (c *Catalog) IsValidClass(t models.AssetType, class models.AssetClass) bool {
	return slices.Contains(c.classes[t], class)
}
