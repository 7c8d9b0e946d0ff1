// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to a UniFi
// controller's content-filtering API.
//
// The primary abstraction is [ControllerAdapter], which owns the
// authenticated HTTP session (cookies plus the CSRF token recovered from
// the login cookie) and exposes the four operations the CLI is built on.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for a missing filter rule,
// [ErrUnauthorized] for a rejected login).
package adapter

import (
	"context"

	"github.com/MKhiriev/unifi-filter-sync/models"
)

// ControllerAdapter defines the authenticated interaction with one
// controller site. Implementations are responsible for serialisation,
// session cookie management, CSRF header management, and mapping
// transport-level errors to the sentinel values defined in this package.
//
// Login must be called once before any other method; the session then
// stays authenticated for the lifetime of the adapter.
type ControllerAdapter interface {
	// Login authenticates against the controller with the configured
	// credentials. On success the session cookie is retained and the
	// anti-forgery token is extracted from it when possible; extraction
	// failure is logged as a warning, not returned as an error. Any
	// non-2xx response is returned as a wrapped [ErrUnauthorized].
	Login(ctx context.Context) error

	// CSRFToken returns the anti-forgery token captured at login, or an
	// empty string when none could be extracted.
	CSRFToken() string

	// ListFilters fetches all content-filtering rules of the site in the
	// order the controller returns them.
	ListFilters(ctx context.Context) ([]models.ContentFilter, error)

	// FindFilter returns the first filter whose name exactly equals name
	// (case-sensitive). Absence is reported through the bool, not as an
	// error.
	FindFilter(ctx context.Context, name string) (models.ContentFilter, bool, error)

	// UpdateFilter replaces the block-list of the named filter with
	// domains, sending the full filter object back so that fields this
	// tool does not know about survive the update. Returns the number of
	// domains written, or a wrapped [ErrNotFound] (and no PUT) when the
	// filter does not exist.
	UpdateFilter(ctx context.Context, name string, domains []string) (int, error)
}
