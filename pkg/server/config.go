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
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/joeshaw/envdecode"

	"github.com/onsa/fatsecret-crawler/pkg/defaults"
)

// Config holds server configuration. Fields with an env tag can be
// overridden from the environment.
type Config struct {
	// Server identity
	Name    string
	Version string

	// Additional Handlers to be added to the server
	Handlers map[string]http.HandlerFunc

	// Server configuration
	Address string `env:"ADDRESS"`
	Port    int    `env:"PORT"`

	// Rate limiting configuration
	RateLimit      float64 `env:"RATE_LIMIT"`       // requests per second
	RateLimitBurst int     `env:"RATE_LIMIT_BURST"` // burst size

	// Timeouts
	ReadTimeout       time.Duration `env:"READ_TIMEOUT"`
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT"`
	WriteTimeout      time.Duration `env:"WRITE_TIMEOUT"`
	IdleTimeout       time.Duration `env:"IDLE_TIMEOUT"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// NewConfig returns a new Config with sensible defaults.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig()
}

// parseConfig returns defaults overridden by any set environment variables.
// Values that fail to decode leave the defaults in place.
func parseConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Address:           "",
		Port:              8080,
		RateLimit:         10,
		RateLimitBurst:    20,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	env := *cfg
	if err := envdecode.Decode(&env); err != nil {
		if !stderrors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			slog.Warn("ignoring invalid server environment", "error", err)
		}
		return cfg
	}

	if env.Port > 0 {
		cfg.Port = env.Port
	}
	if env.RateLimit > 0 {
		cfg.RateLimit = env.RateLimit
	}
	if env.RateLimitBurst > 0 {
		cfg.RateLimitBurst = env.RateLimitBurst
	}
	for _, d := range []struct{ dst, src *time.Duration }{
		{&cfg.ReadTimeout, &env.ReadTimeout},
		{&cfg.ReadHeaderTimeout, &env.ReadHeaderTimeout},
		{&cfg.WriteTimeout, &env.WriteTimeout},
		{&cfg.IdleTimeout, &env.IdleTimeout},
		{&cfg.ShutdownTimeout, &env.ShutdownTimeout},
	} {
		if *d.src > 0 {
			*d.dst = *d.src
		}
	}
	cfg.Address = env.Address

	return cfg
}
