/*
 * Client - HTTP client for the Hetzner DNS API.
 *
 * Copyright 2026 The hetzner-dns-api authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package hetzner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"hetzner-dns-api/internal/metrics"

	log "github.com/sirupsen/logrus"
)

const (
	// DefaultEndpoint is the base URL of the Hetzner DNS API.
	DefaultEndpoint = "https://dns.hetzner.com/api/v1"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	authHeader = "Auth-API-Token"
)

// Client is a Hetzner DNS API client. It issues one blocking request per
// operation and never retries; failures are surfaced to the caller.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	log        *log.Logger

	// Zone exposes the zone operations.
	Zone *ZoneClient
	// Record exposes the record operations.
	Record *RecordClient
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEndpoint overrides the API base URL. Useful for tests.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithDebug enables request-level debug logging.
func WithDebug(debug bool) ClientOption {
	return func(c *Client) {
		if debug {
			c.log.SetLevel(log.DebugLevel)
		}
	}
}

// WithLogger replaces the client's logger.
func WithLogger(logger *log.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.log = logger
		}
	}
}

// NewClient creates an API client authenticating with the given token.
func NewClient(token string, opts ...ClientOption) *Client {
	logger := log.New()
	logger.SetLevel(log.WarnLevel)
	c := &Client{
		endpoint: DefaultEndpoint,
		token:    token,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		log: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Zone = &ZoneClient{client: c}
	c.Record = &RecordClient{client: c}
	return c
}

// response carries the status and raw body of an API response.
type response struct {
	statusCode int
	body       []byte
}

// do issues a single request against path relative to the configured
// endpoint and maps non-success statuses to the error kinds of this package.
func (c *Client) do(ctx context.Context, action, method, path string, query url.Values, contentType string, body []byte) (*response, error) {
	m := metrics.GetAPIMetrics()

	reqURL := c.endpoint + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("cannot build %s request for %s: %w", method, path, err)
	}
	req.Header.Set(authHeader, c.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.log.Debugf("%s %s", method, reqURL)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		m.IncFailedCallsTotal(action)
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()
	m.AddCallDelayHist(action, time.Since(start).Milliseconds())
	m.ObserveRateLimit(resp.Header)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		m.IncFailedCallsTotal(action)
		return nil, fmt.Errorf("cannot read response from %s: %w", path, err)
	}
	c.log.Debugf("%s %s -> %d (%d bytes)", method, path, resp.StatusCode, len(data))

	if err := checkStatus(resp.StatusCode, data); err != nil {
		m.IncFailedCallsTotal(action)
		return nil, err
	}
	m.IncSuccessfulCallsTotal(action)

	return &response{statusCode: resp.StatusCode, body: data}, nil
}

// checkStatus maps an HTTP status to an error kind. 200, 201 and 204 are
// successes; 404 and 401 get dedicated kinds so callers can branch on them.
func checkStatus(status int, body []byte) error {
	switch status {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return &NotFoundError{Body: string(body)}
	case http.StatusUnauthorized:
		return &AuthorizationError{Body: string(body)}
	default:
		return &APIError{StatusCode: status, Body: string(body)}
	}
}
