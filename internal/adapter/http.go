// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/MKhiriev/unifi-filter-sync/internal/config"
	"github.com/MKhiriev/unifi-filter-sync/internal/logger"
	"github.com/MKhiriev/unifi-filter-sync/models"
	"github.com/go-resty/resty/v2"
)

// sessionCookieName is the JWT-shaped cookie the controller sets on login.
// Its payload carries the csrfToken claim.
const sessionCookieName = "TOKEN"

type controllerAdapter struct {
	client *resty.Client

	site      string
	creds     models.Credentials
	csrfToken string

	logger *logger.Logger
}

// NewControllerAdapter constructs an HTTP implementation of
// [ControllerAdapter]. It normalises and validates the base URL from
// cfg.Host and configures the underlying resty client with a cookie jar
// (the controller session lives in cookies), the configured request
// timeout, and — unless cfg.VerifyTLS is set — a TLS config that skips
// certificate verification, because controllers commonly run on
// self-signed certificates.
//
// Returns an error if cfg.Host is empty or cannot be parsed as a valid
// URL.
func NewControllerAdapter(cfg config.Controller, log *logger.Logger) (ControllerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid controller host: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout).
		SetCookieJar(jar)

	if !cfg.VerifyTLS {
		client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}

	return &controllerAdapter{
		client: client,
		site:   cfg.Site,
		creds:  models.Credentials{Username: cfg.Username, Password: cfg.Password},
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ControllerAdapter]. It POSTs the credentials to
// POST /api/auth/login. Any non-2xx response is returned as a wrapped
// [ErrUnauthorized] — a failed login is terminal for the run. On success
// the csrfToken claim is pulled out of the session cookie; when the
// cookie is absent or malformed the session continues without an
// anti-forgery token and a warning is logged (the controller may then
// reject mutating calls, which surfaces as an update failure).
func (c *controllerAdapter) Login(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(c.creds).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if !resp.IsSuccess() {
		body := strings.TrimSpace(string(resp.Body()))
		return fmt.Errorf("%w: http %d: %s", ErrUnauthorized, resp.StatusCode(), body)
	}

	c.csrfToken = ""
	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookieName {
			c.csrfToken = extractCSRFToken(cookie.Value)
			break
		}
	}
	if c.csrfToken == "" {
		c.logger.Warn().Msg("no CSRF token in session cookie, mutating calls will omit the anti-forgery header")
	}

	return nil
}

// CSRFToken implements [ControllerAdapter].
func (c *controllerAdapter) CSRFToken() string {
	return c.csrfToken
}

// ListFilters implements [ControllerAdapter]. It GETs the site's
// content-filtering collection and returns the decoded rules in wire
// order.
func (c *controllerAdapter) ListFilters(ctx context.Context) ([]models.ContentFilter, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(c.filtersPath())
	if err != nil {
		return nil, fmt.Errorf("list filters request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var filters []models.ContentFilter
	if err = json.Unmarshal(resp.Body(), &filters); err != nil {
		return nil, fmt.Errorf("decode content filters: %w", err)
	}

	return filters, nil
}

// FindFilter implements [ControllerAdapter]. The name match is exact and
// case-sensitive; absence is not an error.
func (c *controllerAdapter) FindFilter(ctx context.Context, name string) (models.ContentFilter, bool, error) {
	filters, err := c.ListFilters(ctx)
	if err != nil {
		return models.ContentFilter{}, false, err
	}

	for _, filter := range filters {
		if filter.Name == name {
			return filter, true, nil
		}
	}

	return models.ContentFilter{}, false, nil
}

// UpdateFilter implements [ControllerAdapter]. It resolves the filter by
// name, replaces its block-list with domains, and PUTs the full object
// back to the filter's per-id endpoint — a read-modify-write that keeps
// every field the controller sent. The X-CSRF-Token header is attached
// when a token was captured at login. No PUT is issued when the filter
// does not exist.
func (c *controllerAdapter) UpdateFilter(ctx context.Context, name string, domains []string) (int, error) {
	filter, found, err := c.FindFilter(ctx, name)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	filter.BlockList = domains

	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(filter)
	if c.csrfToken != "" {
		req.SetHeader("X-CSRF-Token", c.csrfToken)
	}

	resp, err := req.Put(c.filtersPath() + "/" + url.PathEscape(filter.ID))
	if err != nil {
		return 0, fmt.Errorf("update filter request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	c.logger.Debug().Str("filter", name).Int("domains", len(domains)).Msg("filter updated")
	return len(domains), nil
}

func (c *controllerAdapter) filtersPath() string {
	return fmt.Sprintf("/proxy/network/v2/api/site/%s/content-filtering", url.PathEscape(c.site))
}
