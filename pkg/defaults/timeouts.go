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

package defaults

import "time"

// Fetch timeouts for outbound requests to the nutrition site.
const (
	// FetchTimeout is the total timeout for a single page request.
	FetchTimeout = 3 * time.Second

	// FetchConnectTimeout is the timeout for establishing connections.
	FetchConnectTimeout = 2 * time.Second

	// FetchIdleConnTimeout is the timeout for idle connections in the pool.
	FetchIdleConnTimeout = 90 * time.Second

	// FetchKeepAlive is the keep-alive duration for connections.
	FetchKeepAlive = 30 * time.Second
)

// Crawl limits.
const (
	// ResultsPerPage is the number of ingredient rows on a search results page.
	ResultsPerPage = 10

	// CrawlRate is the default number of page requests per second.
	CrawlRate = 4

	// CrawlBurst is the default request burst allowed by the crawl limiter.
	CrawlBurst = 2

	// CrawlConcurrency bounds the rows of one page processed in parallel.
	CrawlConcurrency = 4

	// MaxPageSize caps the bytes read from a single page.
	MaxPageSize = 4 << 20

	// MaxHits caps the number of ingredients one search may request.
	MaxHits = 200
)

// Handler timeouts for HTTP request processing.
const (
	// SearchHandlerTimeout bounds a full search request including pagination.
	SearchHandlerTimeout = 60 * time.Second

	// ParseHandlerTimeout bounds an offline parse request.
	ParseHandlerTimeout = 5 * time.Second

	// MaxParseBodySize caps the summary text accepted by the parse endpoint.
	MaxParseBodySize = 64 << 10
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// Longer than SearchHandlerTimeout so timeouts surface as JSON errors.
	ServerWriteTimeout = 75 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLISearchTimeout is the default timeout for the search command.
	CLISearchTimeout = 2 * time.Minute
)
