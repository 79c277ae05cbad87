// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

var supportedDSNPrefixes = []string{"postgres://", "postgresql://", "sqlite://", "file:"}

// validate checks that the merged [StructuredConfig] can start the server.
func (cfg *StructuredConfig) validate() error {
	if !isSupportedDSN(cfg.Storage.DB.DSN) {
		return fmt.Errorf("%w: database DSN is empty or has an unsupported scheme", ErrInvalidStorageConfigs)
	}

	if cfg.Storage.DB.MaxOpenConns < 0 {
		return fmt.Errorf("%w: max open connections must not be negative", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: address is empty", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: server URL %q is not an absolute URL", ErrInvalidClientConfigs, cfg.ServerURL)
	}

	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
	}

	return nil
}

func isSupportedDSN(dsn string) bool {
	if dsn == "" {
		return false
	}

	for _, prefix := range supportedDSNPrefixes {
		if strings.HasPrefix(dsn, prefix) {
			return true
		}
	}

	// keyword/value form: "host=localhost dbname=assets"
	return strings.Contains(dsn, "host=") || strings.Contains(dsn, "dbname=")
}
