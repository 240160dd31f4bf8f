/*
 * Decode - envelope decoding for API responses.
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
	"encoding/json"
)

// envelope is one of the known top-level response shapes. The caller always
// names the shape it expects; there is no dynamic shape inference.
type envelope interface {
	validate() error
}

// decodeResponse parses a response body into the requested envelope shape.
// Timestamp and verified-time fields are routed through the codec by the
// types' own Unmarshal hooks. A structural mismatch yields a ParseError
// carrying the pretty-printed payload.
func decodeResponse[T envelope](body []byte) (T, error) {
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return out, newParseError(body, err)
	}
	if err := out.validate(); err != nil {
		return out, newParseError(body, err)
	}
	return out, nil
}

// newParseError builds a ParseError with an indented copy of the payload.
// A payload that is not valid JSON at all is included verbatim.
func newParseError(body []byte, err error) *ParseError {
	var pretty bytes.Buffer
	if indentErr := json.Indent(&pretty, body, "", "  "); indentErr != nil {
		return &ParseError{Body: string(body), Err: err}
	}
	return &ParseError{Body: pretty.String(), Err: err}
}

// encodeRequest serializes a request payload, routing timestamp fields
// through the codec via the types' Marshal hooks.
func encodeRequest(v any) ([]byte, error) {
	return json.Marshal(v)
}
