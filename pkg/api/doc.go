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

// Package api provides the HTTP API of the fatsecretd service.
//
// It is a thin layer over pkg/server: it configures structured logging,
// builds a crawler from the environment and registers the ingredient
// routes. Server lifecycle, middleware and system endpoints are handled by
// pkg/server.
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET  /v1/ingredients?q=<term>&hits=<n> - search and parse ingredients
//   - POST /v1/parse?name=<name>&brand=<brand> - parse a summary posted as text/plain
//   - GET  /v1/units - list recognised units and conversion factors
//
// System endpoints:
//   - GET /health  - liveness
//   - GET /ready   - readiness
//   - GET /metrics - Prometheus metrics
//
// hits defaults to 10 and is capped at 200.
//
// Example:
//
//	curl "http://localhost:8080/v1/ingredients?q=milk&hits=5"
//
//	curl -X POST "http://localhost:8080/v1/parse?name=Milk" \
//	  -H "Content-Type: text/plain" \
//	  --data-binary $'per 100ml - Calories: 52kcal | Fat: 1.80g\n100 g - 50kcal'
//
// # Configuration
//
// Server settings come from PORT, RATE_LIMIT, RATE_LIMIT_BURST and the
// *_TIMEOUT variables read by pkg/server. The crawler reads:
//   - FATSECRET_BASE_URL: site root (default http://www.fatsecret.co.uk)
//   - FATSECRET_USER_AGENT: User-Agent sent with page requests
//   - FATSECRET_CRAWL_RATE: page requests per second
//   - FATSECRET_CRAWL_BURST: request burst
//   - FATSECRET_CRAWL_CONCURRENCY: rows processed in parallel
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/onsa/fatsecret-crawler/pkg/api.version=1.0.0'"
package api
