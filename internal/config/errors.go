package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address or a non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidDashboardConfigs indicates invalid dashboard settings
	// (for example, an empty settings document path).
	ErrInvalidDashboardConfigs = errors.New("invalid dashboard configuration")
	// ErrInvalidIntegrationConfigs indicates invalid GoHighLevel settings
	// (for example, an API key with no base URL to send it to).
	ErrInvalidIntegrationConfigs = errors.New("invalid integration configuration")
)
