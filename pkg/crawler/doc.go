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

// Package crawler searches the FatSecret site and assembles ingredients
// from its result listings.
//
// HTTPFetcher retrieves listing and detail pages with goquery, honoring a
// request rate limit and a per-request timeout. Crawler walks the listing
// pages until enough ingredients are collected:
//
//	f := crawler.NewHTTPFetcher(crawler.WithRateLimit(4, 2))
//	c := crawler.New(f, crawler.WithConcurrency(4))
//	ings, err := c.Search(ctx, "semi skimmed milk", 20)
//
// For each result row the summary block is parsed, sugar is read from the
// row's detail page, vague servings are dropped, volume servings are
// converted to UK measures, and density is derived where possible. Rows
// whose summary is malformed are skipped.
//
// BuildIngredient performs the same steps, without sugar, for summary text
// obtained elsewhere.
//
// Metrics are registered with the default Prometheus registry under the
// fatsecret_ prefix.
package crawler
