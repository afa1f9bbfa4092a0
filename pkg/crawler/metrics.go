// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package crawler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	pageKindSearch = "search"
	pageKindDetail = "detail"

	rowResultParsed  = "parsed"
	rowResultSkipped = "skipped"
)

var (
	// Page fetch metrics
	fetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fatsecret_fetch_duration_seconds",
			Help:    "Duration of page fetches in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5},
		},
		[]string{"page"},
	)
	fetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fatsecret_fetch_errors_total",
			Help: "Total number of failed page fetches",
		},
		[]string{"page"},
	)

	// Row processing metrics
	rowsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fatsecret_rows_total",
			Help: "Total number of result rows processed by outcome",
		},
		[]string{"result"},
	)
	densityDerived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fatsecret_density_derived_total",
			Help: "Total number of ingredients with a derived density",
		},
	)
)

func observeFetch(kind string, start time.Time, err error) {
	fetchDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		fetchErrors.WithLabelValues(kind).Inc()
	}
}
