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

// Package server provides the HTTP server behind the fatsecretd API.
//
// The server is stateless. API handlers are supplied by the caller and
// wrapped in a middleware chain:
//
//	metrics → version → request ID → panic recovery → rate limit → logging
//
// Rate limiting uses a token bucket (golang.org/x/time/rate). Request IDs
// are taken from X-Request-Id when it holds a UUID and generated otherwise.
//
// # Usage
//
//	s := server.New(
//		server.WithName("fatsecretd"),
//		server.WithVersion(version),
//		server.WithHandler(map[string]http.HandlerFunc{
//			"/v1/ingredients": h.HandleIngredients,
//		}),
//	)
//	if err := s.Run(ctx); err != nil {
//		return err
//	}
//
// # Configuration
//
// Defaults come from package defaults and may be overridden by environment
// variables: PORT, ADDRESS, RATE_LIMIT, RATE_LIMIT_BURST, READ_TIMEOUT,
// READ_HEADER_TIMEOUT, WRITE_TIMEOUT, IDLE_TIMEOUT and SHUTDOWN_TIMEOUT.
// Durations use Go syntax ("30s").
//
// # System Endpoints
//
// GET /health always reports healthy. GET /ready reports 503 until the
// listener is up and again once shutdown begins. GET /metrics serves
// Prometheus metrics. GET / lists the routes.
//
// # Errors
//
// Errors are JSON ErrorResponse values carrying the code, message, details,
// request ID, timestamp and a retryable flag. WriteErrorFromErr derives all
// of these from a *errors.StructuredError.
package server
