/*
 * Time codec tests.
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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Time_roundTrip(t *testing.T) {
	type testCase struct {
		name  string
		value string
	}

	run := func(t *testing.T, tc testCase) {
		parsed, err := ParseTime(tc.value)
		require.NoError(t, err)
		// The zone abbreviation is an opaque token: whatever came in goes
		// back out unchanged.
		assert.Equal(t, tc.value, parsed.String())
	}

	testCases := []testCase{
		{
			name:  "utc",
			value: "2025-09-26 13:18:19.838 +0000 UTC",
		},
		{
			name:  "positive offset",
			value: "2024-03-31 02:00:00.000 +0200 CEST",
		},
		{
			name:  "negative offset",
			value: "2023-12-24 18:30:05.001 -0500 EST",
		},
		{
			name:  "milliseconds zero padded",
			value: "2025-01-01 00:00:00.010 +0000 UTC",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}

func Test_Time_encode(t *testing.T) {
	ts := Time{Time: time.Date(2025, 9, 26, 13, 18, 19, 838_000_000, time.UTC)}
	assert.Equal(t, "2025-09-26 13:18:19.838 +0000 UTC", ts.String())
}

func Test_Time_decodeEncodeEqual(t *testing.T) {
	original := Time{Time: time.Date(2025, 9, 26, 13, 18, 19, 838_000_000, time.UTC)}

	decoded, err := ParseTime(original.String())
	require.NoError(t, err)

	assert.True(t, decoded.Equal(original.Time))
	assert.Equal(t, original.String(), decoded.String())
}

func Test_Time_decodeFailure(t *testing.T) {
	_, err := ParseTime("not-a-timestamp")
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "not-a-timestamp", decodeErr.Value)
}

func Test_Time_json(t *testing.T) {
	var ts Time
	require.NoError(t, json.Unmarshal([]byte(`"2025-09-26 13:18:19.838 +0000 UTC"`), &ts))

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2025-09-26 13:18:19.838 +0000 UTC"`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`"2025-09-26"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`42`), &ts))
}

func Test_VerifiedTime_roundTrip(t *testing.T) {
	t.Run("unverified", func(t *testing.T) {
		data, err := json.Marshal(Unverified())
		require.NoError(t, err)
		assert.Equal(t, `""`, string(data))

		var v VerifiedTime
		require.NoError(t, json.Unmarshal(data, &v))
		assert.False(t, v.IsVerified())
		_, ok := v.Timestamp()
		assert.False(t, ok)
	})

	t.Run("verified", func(t *testing.T) {
		ts, err := ParseTime("2025-09-26 13:18:19.838 +0000 UTC")
		require.NoError(t, err)

		data, err := json.Marshal(Verified(ts))
		require.NoError(t, err)
		assert.Equal(t, `"2025-09-26 13:18:19.838 +0000 UTC"`, string(data))

		var v VerifiedTime
		require.NoError(t, json.Unmarshal(data, &v))
		assert.True(t, v.IsVerified())
		got, ok := v.Timestamp()
		require.True(t, ok)
		assert.Equal(t, ts.String(), got.String())
	})
}

func Test_VerifiedTime_decodeFailure(t *testing.T) {
	var v VerifiedTime
	err := json.Unmarshal([]byte(`"yesterday"`), &v)
	require.Error(t, err)

	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func Test_VerifiedTime_zeroValue(t *testing.T) {
	// The zero value is unverified; no runtime check needed to keep the
	// verified flag and the timestamp consistent.
	var v VerifiedTime
	assert.False(t, v.IsVerified())
	assert.Equal(t, "", v.String())
}
