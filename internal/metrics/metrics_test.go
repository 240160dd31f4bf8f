/*
 * Metrics tests.
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
package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

const testAction = "test_action"

func Test_GetAPIMetrics(t *testing.T) {
	type testCase struct {
		name    string
		metrics *APIMetrics
	}

	run := func(t *testing.T, tc testCase) {
		actual := GetAPIMetrics()
		if tc.metrics != nil {
			assert.EqualValues(t, metrics, actual)
		} else {
			assert.NotNil(t, metrics)
		}
	}

	testCases := []testCase{
		{
			name:    "new instance required",
			metrics: nil,
		},
		{
			name:    "existing instance",
			metrics: &APIMetrics{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			run(t, tc)
		})
	}
}

func Test_APIMetrics_IncSuccessfulCallsTotal(t *testing.T) {
	metrics = nil
	expected := float64(1)

	GetAPIMetrics().IncSuccessfulCallsTotal(testAction)
	actual := testutil.ToFloat64(metrics.successfulCallsTotal)

	assert.Equal(t, expected, actual)
}

func Test_APIMetrics_IncFailedCallsTotal(t *testing.T) {
	metrics = nil
	expected := float64(1)

	GetAPIMetrics().IncFailedCallsTotal(testAction)
	actual := testutil.ToFloat64(metrics.failedCallsTotal)

	assert.Equal(t, expected, actual)
}
