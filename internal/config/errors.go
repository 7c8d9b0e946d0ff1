package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidControllerConfigs indicates invalid controller connection
	// settings (for example, missing host or non-positive request timeout).
	ErrInvalidControllerConfigs = errors.New("invalid controller configuration")
	// ErrInvalidCredentialConfigs indicates missing login credentials.
	ErrInvalidCredentialConfigs = errors.New("invalid credential configuration")
	// ErrInvalidSiteConfigs indicates a missing controller site name.
	ErrInvalidSiteConfigs = errors.New("invalid site configuration")
)
