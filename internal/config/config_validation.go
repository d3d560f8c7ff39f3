// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Propflow Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Dashboard.SettingsPath == "" {
		return ErrInvalidDashboardConfigs
	}

	if cfg.GoHighLevel.APIKey != "" && cfg.GoHighLevel.BaseURL == "" {
		return ErrInvalidIntegrationConfigs
	}

	return nil
}
