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

package api

import (
	stderrors "errors"
	"log/slog"

	"github.com/joeshaw/envdecode"
	"golang.org/x/time/rate"

	"github.com/onsa/fatsecret-crawler/pkg/crawler"
	"github.com/onsa/fatsecret-crawler/pkg/defaults"
)

// CrawlConfig configures the crawler behind the search endpoint.
type CrawlConfig struct {
	BaseURL     string  `env:"FATSECRET_BASE_URL"`
	UserAgent   string  `env:"FATSECRET_USER_AGENT"`
	Rate        float64 `env:"FATSECRET_CRAWL_RATE"`
	Burst       int     `env:"FATSECRET_CRAWL_BURST"`
	Concurrency int     `env:"FATSECRET_CRAWL_CONCURRENCY"`
}

// NewCrawlConfig returns the default crawl configuration.
func NewCrawlConfig() *CrawlConfig {
	return &CrawlConfig{
		BaseURL:     crawler.DefaultBaseURL,
		UserAgent:   crawler.DefaultUserAgent,
		Rate:        defaults.CrawlRate,
		Burst:       defaults.CrawlBurst,
		Concurrency: defaults.CrawlConcurrency,
	}
}

// parseCrawlConfig overlays FATSECRET_* environment values on the defaults.
func parseCrawlConfig() *CrawlConfig {
	cfg := NewCrawlConfig()

	var env CrawlConfig
	if err := envdecode.Decode(&env); err != nil {
		if !stderrors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			slog.Warn("ignoring invalid crawl environment", "error", err)
		}
		return cfg
	}

	if env.BaseURL != "" {
		cfg.BaseURL = env.BaseURL
	}
	if env.UserAgent != "" {
		cfg.UserAgent = env.UserAgent
	}
	if env.Rate > 0 {
		cfg.Rate = env.Rate
	}
	if env.Burst > 0 {
		cfg.Burst = env.Burst
	}
	if env.Concurrency > 0 {
		cfg.Concurrency = env.Concurrency
	}
	return cfg
}

// NewCrawler builds a crawler over the live site from cfg.
func (cfg *CrawlConfig) NewCrawler() *crawler.Crawler {
	f := crawler.NewHTTPFetcher(
		crawler.WithBaseURL(cfg.BaseURL),
		crawler.WithUserAgent(cfg.UserAgent),
		crawler.WithRateLimit(rate.Limit(cfg.Rate), cfg.Burst),
	)
	return crawler.New(f, crawler.WithConcurrency(cfg.Concurrency))
}
