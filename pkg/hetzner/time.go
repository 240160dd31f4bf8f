/*
 * Time - codec for the non-standard Hetzner DNS timestamp format.
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
	"encoding/json"
	"time"
)

// TimeLayout is the timestamp layout used by the Hetzner DNS API, e.g.
// "2025-09-26 13:18:19.838 +0000 UTC". The same layout is used for encoding
// and decoding. The trailing zone abbreviation is captured verbatim at parse
// time and re-emitted as-is, so round-trips do not depend on the local
// timezone database.
const TimeLayout = "2006-01-02 15:04:05.000 -0700 MST"

// Time is a point in time with millisecond precision, serialized in the
// Hetzner DNS timestamp format.
type Time struct {
	time.Time
}

// ParseTime parses a timestamp in the Hetzner DNS format.
func ParseTime(value string) (Time, error) {
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return Time{}, &DecodeError{Value: value, Err: err}
	}
	return Time{Time: t}, nil
}

// String returns the timestamp in the wire format.
func (t Time) String() string {
	return t.Format(TimeLayout)
}

// MarshalJSON implements json.Marshaler.
func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimeLayout))
}

// UnmarshalJSON implements json.Unmarshaler. A string that does not match
// TimeLayout yields a DecodeError.
func (t *Time) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return &DecodeError{Value: string(data), Err: err}
	}
	parsed, err := ParseTime(value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// VerifiedTime records whether and when a zone was verified. The provider
// encodes "never verified" as an empty string and a verification time as a
// regular timestamp. The zero value is unverified; a verified value always
// carries a timestamp and an unverified one never does.
type VerifiedTime struct {
	verified  bool
	timestamp Time
}

// Verified returns a VerifiedTime carrying the given verification timestamp.
func Verified(t Time) VerifiedTime {
	return VerifiedTime{verified: true, timestamp: t}
}

// Unverified returns a VerifiedTime for a zone that was never verified.
func Unverified() VerifiedTime {
	return VerifiedTime{}
}

// IsVerified reports whether a verification timestamp is present.
func (v VerifiedTime) IsVerified() bool {
	return v.verified
}

// Timestamp returns the verification timestamp. The second return value is
// false for unverified values.
func (v VerifiedTime) Timestamp() (Time, bool) {
	return v.timestamp, v.verified
}

// String returns the wire representation.
func (v VerifiedTime) String() string {
	if !v.verified {
		return ""
	}
	return v.timestamp.String()
}

// MarshalJSON implements json.Marshaler. Unverified values encode to "".
func (v VerifiedTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON implements json.Unmarshaler. An empty string decodes to an
// unverified value; anything else goes through the timestamp codec.
func (v *VerifiedTime) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return &DecodeError{Value: string(data), Err: err}
	}
	if value == "" {
		*v = Unverified()
		return nil
	}
	parsed, err := ParseTime(value)
	if err != nil {
		return err
	}
	*v = Verified(parsed)
	return nil
}
