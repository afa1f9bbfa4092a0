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

package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

func newTestServer(limiter *rate.Limiter) *Server {
	if limiter == nil {
		limiter = rate.NewLimiter(100, 200)
	}
	return &Server{
		config:      NewConfig(),
		rateLimiter: limiter,
	}
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestRequestIDMiddleware(t *testing.T) {
	provided := uuid.New().String()

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{"generated when missing", "", false},
		{"kept when valid", provided, true},
		{"replaced when invalid", "not-a-uuid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(nil)

			var captured string
			h := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
				captured = r.Context().Value(contextKeyRequestID).(string)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/units", nil)
			if tt.header != "" {
				req.Header.Set("X-Request-Id", tt.header)
			}
			rec := serve(h, req)

			if _, err := uuid.Parse(captured); err != nil {
				t.Fatalf("expected valid UUID, got %q", captured)
			}
			if tt.wantSame && captured != tt.header {
				t.Errorf("expected request ID %q, got %q", tt.header, captured)
			}
			if !tt.wantSame && captured == tt.header {
				t.Errorf("expected request ID %q to be replaced", tt.header)
			}
			if rec.Header().Get("X-Request-Id") != captured {
				t.Errorf("response header %q does not match context %q",
					rec.Header().Get("X-Request-Id"), captured)
			}
		})
	}
}

func TestVersionMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"no accept header", "", DefaultAPIVersion},
		{"plain json", "application/json", DefaultAPIVersion},
		{"vendor v1", "application/vnd.fatsecret.v1+json", "v1"},
		{"unknown vendor version", "application/vnd.fatsecret.v9+json", DefaultAPIVersion},
		{"vendor among others", "text/html, application/vnd.fatsecret.v1+json;q=0.9", "v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(nil)

			var captured string
			h := s.versionMiddleware(func(w http.ResponseWriter, r *http.Request) {
				if v, ok := r.Context().Value(contextKeyAPIVersion).(string); ok {
					captured = v
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/units", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rec := serve(h, req)

			if captured != tt.want {
				t.Errorf("expected version %q in context, got %q", tt.want, captured)
			}
			if got := rec.Header().Get("X-API-Version"); got != tt.want {
				t.Errorf("expected X-API-Version %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRateLimitMiddleware_AllowsRequests(t *testing.T) {
	s := newTestServer(nil)

	called := false
	rec := serve(s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), httptest.NewRequest(http.MethodGet, "/v1/ingredients?q=milk", nil))

	if !called {
		t.Error("expected handler to be called")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	for _, h := range []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
		if rec.Header().Get(h) == "" {
			t.Errorf("expected %s header", h)
		}
	}
}

func TestRateLimitMiddleware_RejectsWhenExceeded(t *testing.T) {
	s := newTestServer(rate.NewLimiter(0, 0))

	called := false
	rec := serve(s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}), httptest.NewRequest(http.MethodGet, "/v1/ingredients?q=milk", nil))

	if called {
		t.Error("handler should not be called when rate limited")
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header when rate limited")
	}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := newTestServer(nil)

	rec := serve(s.panicRecoveryMiddleware(func(http.ResponseWriter, *http.Request) {
		panic("parser exploded")
	}), httptest.NewRequest(http.MethodPost, "/v1/parse", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}

	rec = serve(s.panicRecoveryMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}), httptest.NewRequest(http.MethodPost, "/v1/parse", nil))

	if rec.Code != http.StatusAccepted {
		t.Errorf("expected status 202 to pass through, got %d", rec.Code)
	}
}

func TestLoggingMiddleware_TracksStatusCode(t *testing.T) {
	s := newTestServer(nil)

	for _, status := range []int{
		http.StatusOK,
		http.StatusBadRequest,
		http.StatusUnprocessableEntity,
		http.StatusGatewayTimeout,
	} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			h := s.requestIDMiddleware(s.loggingMiddleware(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			}))

			rec := serve(h, httptest.NewRequest(http.MethodGet, "/v1/units", nil))
			if rec.Code != status {
				t.Errorf("expected status %d, got %d", status, rec.Code)
			}
		})
	}
}

func TestMiddlewareChain(t *testing.T) {
	s := newTestServer(nil)

	var hasRequestID, hasAPIVersion bool
	rec := serve(s.withMiddleware(func(w http.ResponseWriter, r *http.Request) {
		hasRequestID = r.Context().Value(contextKeyRequestID) != nil
		hasAPIVersion = r.Context().Value(contextKeyAPIVersion) != nil
		w.WriteHeader(http.StatusOK)
	}), httptest.NewRequest(http.MethodGet, "/v1/units", nil))

	if !hasRequestID {
		t.Error("expected request ID in context")
	}
	if !hasAPIVersion {
		t.Error("expected API version in context")
	}

	for _, h := range []string{
		"X-Request-Id",
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"X-API-Version",
	} {
		if rec.Header().Get(h) == "" {
			t.Errorf("expected header %s to be set", h)
		}
	}
}
