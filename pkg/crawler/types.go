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
	"context"
)

// DetailLinkLabel is the anchor text of the link to an item's detail page.
const DetailLinkLabel = "Nutrition Facts"

// DefaultSugar is reported when a detail page has no sugar row.
const DefaultSugar = "0 g"

// Link is an anchor found in a result row.
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Row is one search result as scraped from the listing page.
type Row struct {
	Prominent string `json:"prominent" yaml:"prominent"`
	Brand     string `json:"brand,omitempty" yaml:"brand,omitempty"`
	Summary   string `json:"summary" yaml:"summary"`
	Links     []Link `json:"links,omitempty" yaml:"links,omitempty"`
}

// DetailURL returns the href of the row's detail page link, if any.
func (r Row) DetailURL() (string, bool) {
	for _, l := range r.Links {
		if l.Label == DetailLinkLabel && l.URL != "" {
			return l.URL, true
		}
	}
	return "", false
}

// ResultSet is a single page of search results.
type ResultSet struct {
	// Rows in page order.
	Rows []Row

	// Pages is the total number of result pages for the term, 0 when
	// the site reported no results.
	Pages int
}

// PageFetcher retrieves search and detail pages.
type PageFetcher interface {
	// FetchSearchPage returns the rows of the zero-based page for term.
	FetchSearchPage(ctx context.Context, term string, page int) (*ResultSet, error)

	// FetchDetailPage returns the text of the sugar cell of a detail page,
	// or DefaultSugar when the page has none.
	FetchDetailPage(ctx context.Context, url string) (string, error)

	// PageCount returns the number of result pages for term.
	PageCount(ctx context.Context, term string) (int, error)
}
