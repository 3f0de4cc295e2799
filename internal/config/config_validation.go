// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the settings every binary relies on: the sync policy.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.BundleThreshold < 1 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Sync.MaxPerPage < 1 || cfg.Sync.MaxPerPage > DefaultMaxPerPage {
		return ErrInvalidSyncConfigs
	}

	if cfg.Sync.DefaultPerPage < 1 || cfg.Sync.DefaultPerPage > cfg.Sync.MaxPerPage {
		return ErrInvalidSyncConfigs
	}

	return nil
}

// ValidateServer checks the settings the HTTP server cannot start without.
func (cfg *StructuredConfig) ValidateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// ValidateTokenTool checks the settings needed to mint an editor token.
func (cfg *StructuredConfig) ValidateTokenTool() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.TokenEditorID <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}
