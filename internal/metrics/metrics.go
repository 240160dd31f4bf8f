/*
 * Metrics - API call instrumentation.
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
	"github.com/prometheus/client_golang/prometheus"
)

// metrics instance
var metrics *APIMetrics

// APIMetrics collects per-action counters and latencies for Hetzner DNS API
// calls, plus the rate-limit state reported by the API itself.
type APIMetrics struct {
	registry *prometheus.Registry

	successfulCallsTotal *prometheus.CounterVec
	failedCallsTotal     *prometheus.CounterVec
	callDelayHist        *prometheus.HistogramVec

	rateLimitLimit     prometheus.Gauge
	rateLimitRemaining prometheus.Gauge
}

// GetAPIMetrics returns the current APIMetrics instance or creates a new one
// if required.
func GetAPIMetrics() *APIMetrics {
	if metrics == nil {
		reg := prometheus.NewRegistry()
		metrics = &APIMetrics{
			registry: reg,
			successfulCallsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "successful_api_calls_total",
					Help: "The number of successful Hetzner DNS API calls",
				},
				[]string{"action"},
			),
			failedCallsTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "failed_api_calls_total",
					Help: "The number of Hetzner DNS API calls that returned an error",
				},
				[]string{"action"},
			),
			callDelayHist: prometheus.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "api_call_delay_ms",
					Help:    "Histogram of the delay in milliseconds when calling the Hetzner DNS API",
					Buckets: []float64{10, 100, 250, 500, 1000, 1500, 2000},
				},
				[]string{"action"},
			),
			rateLimitLimit: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "api_rate_limit",
				Help: "The request budget reported by the API rate limiter",
			}),
			rateLimitRemaining: prometheus.NewGauge(prometheus.GaugeOpts{
				Name: "api_rate_limit_remaining",
				Help: "The remaining requests reported by the API rate limiter",
			}),
		}
		reg.MustRegister(metrics.successfulCallsTotal)
		reg.MustRegister(metrics.failedCallsTotal)
		reg.MustRegister(metrics.callDelayHist)
		reg.MustRegister(metrics.rateLimitLimit)
		reg.MustRegister(metrics.rateLimitRemaining)
	}
	return metrics
}

// getLabels builds the label map.
func getLabels(action string) prometheus.Labels {
	return prometheus.Labels{"action": action}
}

// GetRegistry returns the registry, so that an embedding program can mount
// or gather it.
func (m APIMetrics) GetRegistry() *prometheus.Registry {
	return m.registry
}

// IncSuccessfulCallsTotal increments the successful_api_calls_total counter.
func (m *APIMetrics) IncSuccessfulCallsTotal(action string) {
	m.successfulCallsTotal.With(getLabels(action)).Inc()
}

// IncFailedCallsTotal increments the failed_api_calls_total counter.
func (m *APIMetrics) IncFailedCallsTotal(action string) {
	m.failedCallsTotal.With(getLabels(action)).Inc()
}

// AddCallDelayHist records the delay of one API call in milliseconds.
func (m *APIMetrics) AddCallDelayHist(action string, delay int64) {
	m.callDelayHist.With(getLabels(action)).Observe(float64(delay))
}
