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
	"testing"
	"time"

	"github.com/onsa/fatsecret-crawler/pkg/defaults"
)

func TestParseConfig(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		cfg := parseConfig()

		if cfg.Address != "" {
			t.Errorf("expected empty address, got %s", cfg.Address)
		}
		if cfg.Port != 8080 {
			t.Errorf("expected port 8080, got %d", cfg.Port)
		}
		if cfg.RateLimit != 10 {
			t.Errorf("expected rate limit 10, got %v", cfg.RateLimit)
		}
		if cfg.RateLimitBurst != 20 {
			t.Errorf("expected rate limit burst 20, got %d", cfg.RateLimitBurst)
		}
		if cfg.WriteTimeout != defaults.ServerWriteTimeout {
			t.Errorf("expected write timeout %v, got %v", defaults.ServerWriteTimeout, cfg.WriteTimeout)
		}
		if cfg.ShutdownTimeout != defaults.ServerShutdownTimeout {
			t.Errorf("expected shutdown timeout %v, got %v", defaults.ServerShutdownTimeout, cfg.ShutdownTimeout)
		}
	})

	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("RATE_LIMIT", "2.5")
		t.Setenv("SHUTDOWN_TIMEOUT", "5s")

		cfg := parseConfig()

		if cfg.Port != 9090 {
			t.Errorf("expected port 9090 from env, got %d", cfg.Port)
		}
		if cfg.RateLimit != 2.5 {
			t.Errorf("expected rate limit 2.5 from env, got %v", cfg.RateLimit)
		}
		if cfg.ShutdownTimeout != 5*time.Second {
			t.Errorf("expected shutdown timeout 5s from env, got %v", cfg.ShutdownTimeout)
		}
		if cfg.ReadTimeout != defaults.ServerReadTimeout {
			t.Errorf("expected unset read timeout to keep default, got %v", cfg.ReadTimeout)
		}
	})

	t.Run("invalid port from environment uses default", func(t *testing.T) {
		t.Setenv("PORT", "invalid")

		cfg := parseConfig()

		if cfg.Port != 8080 {
			t.Errorf("expected default port 8080 for invalid env, got %d", cfg.Port)
		}
	})
}
