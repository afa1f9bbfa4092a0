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

// Package defaults provides centralized configuration constants for the crawler.
//
// This package defines timeout values, crawl limits, and server defaults used
// across the codebase. Centralizing these values ensures consistency and makes
// tuning easier.
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CLISearchTimeout)
//	defer cancel()
//
// # Guidelines
//
//   - Page fetches: 3s, the site answers quickly or not at all
//   - Crawl rate: a few requests per second to stay polite
//   - Search handler: 60s, pagination plus one detail page per row
//   - Server shutdown: 30s for graceful shutdown
package defaults
