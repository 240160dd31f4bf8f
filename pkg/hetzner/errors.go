/*
 * Errors - error kinds surfaced by the API client.
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

import "fmt"

// DecodeError reports a timestamp string that does not match TimeLayout.
type DecodeError struct {
	Value string
	Err   error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode timestamp %q: %v", e.Value, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ParseError reports a response payload that does not match the requested
// envelope shape. Body carries the pretty-printed original JSON, since the
// provider's responses are otherwise opaque to the caller.
type ParseError struct {
	Body string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse response: %v. Response:\n%s", e.Err, e.Body)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NotFoundError reports an HTTP 404 from the API, so that callers can
// distinguish "absent" from "broken".
type NotFoundError struct {
	Body string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Body == "" {
		return "requested resource not found"
	}
	return fmt.Sprintf("requested resource not found: %s", e.Body)
}

// AuthorizationError reports an HTTP 401 from the API.
type AuthorizationError struct {
	Body string
}

// Error implements the error interface.
func (e *AuthorizationError) Error() string {
	if e.Body == "" {
		return "authorization failed, check your API key"
	}
	return fmt.Sprintf("authorization failed, check your API key: %s", e.Body)
}

// APIError reports any other non-success status received from the API.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP error %d received from the Hetzner API: %s", e.StatusCode, e.Body)
}
