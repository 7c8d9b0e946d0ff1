// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before a controller session is opened.
//
// Returns nil if the configuration is valid, or a sentinel error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Controller.Host == "" || cfg.Controller.RequestTimeout <= 0 {
		return ErrInvalidControllerConfigs
	}

	if cfg.Controller.Username == "" || cfg.Controller.Password == "" {
		return ErrInvalidCredentialConfigs
	}

	if cfg.Controller.Site == "" {
		return ErrInvalidSiteConfigs
	}

	return nil
}
