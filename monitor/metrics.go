// Copyright 2026 The CodeCircle Authors, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package monitor exposes the platform's prometheus metrics.
package monitor

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ProvisionTotal counts provisioning attempts per downstream service.
	ProvisionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codecircle_provision_total",
		Help: "Provisioning attempts by downstream service and result.",
	}, []string{"service", "result"})

	// SyncTotal counts background synchronization operations.
	SyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codecircle_sync_total",
		Help: "Background config synchronizations by operation and result.",
	}, []string{"operation", "result"})

	// HTTPRequests counts API requests by route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "codecircle_http_requests_total",
		Help: "API requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes API request latency by route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "codecircle_http_request_duration_seconds",
		Help:    "API request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// Handler serves the default prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
