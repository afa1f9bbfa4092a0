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
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/onsa/fatsecret-crawler/pkg/defaults"
	"github.com/onsa/fatsecret-crawler/pkg/errors"
)

const (
	// DefaultBaseURL is the site crawled when no base URL is configured.
	DefaultBaseURL = "http://www.fatsecret.co.uk"

	// SearchPath is the search endpoint relative to the base URL.
	SearchPath = "/calories-nutrition/search"

	// DefaultUserAgent identifies the crawler to the site.
	DefaultUserAgent = "fatsecret-crawler/1.0"
)

// Selectors for the listing and detail pages.
const (
	rowSelector       = "table.generic.searchResult tr td"
	noResultSelector  = "div.searchNoResult"
	resultSumSelector = "div.searchResultSummary"
	nutritionSelector = "#content .nutpanel table tr"
)

// HTTPFetcher implements PageFetcher against the live site.
type HTTPFetcher struct {
	client      *http.Client
	baseURL     string
	userAgent   string
	maxPageSize int64
	limiter     *rate.Limiter
}

// FetcherOption is a functional option for configuring HTTPFetcher instances.
type FetcherOption func(*HTTPFetcher)

// WithBaseURL sets the site root, e.g. "https://www.fatsecret.co.uk".
func WithBaseURL(u string) FetcherOption {
	return func(f *HTTPFetcher) {
		f.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) FetcherOption {
	return func(f *HTTPFetcher) {
		f.client = c
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) FetcherOption {
	return func(f *HTTPFetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit caps outgoing requests per second. A non-positive limit
// disables limiting.
func WithRateLimit(limit rate.Limit, burst int) FetcherOption {
	return func(f *HTTPFetcher) {
		if limit <= 0 {
			f.limiter = nil
			return
		}
		f.limiter = rate.NewLimiter(limit, burst)
	}
}

// WithMaxPageSize caps the number of bytes read from a response.
func WithMaxPageSize(n int64) FetcherOption {
	return func(f *HTTPFetcher) {
		f.maxPageSize = n
	}
}

// NewHTTPFetcher creates a fetcher with the defaults from package defaults.
func NewHTTPFetcher(opts ...FetcherOption) *HTTPFetcher {
	dialer := &net.Dialer{
		Timeout:   defaults.FetchConnectTimeout,
		KeepAlive: defaults.FetchKeepAlive,
	}

	f := &HTTPFetcher{
		client: &http.Client{
			Timeout: defaults.FetchTimeout,
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				DialContext:           dialer.DialContext,
				ResponseHeaderTimeout: defaults.FetchTimeout,
				MaxIdleConns:          10,
				IdleConnTimeout:       defaults.FetchIdleConnTimeout,
			},
		},
		baseURL:     DefaultBaseURL,
		userAgent:   DefaultUserAgent,
		maxPageSize: defaults.MaxPageSize,
		limiter:     rate.NewLimiter(rate.Limit(defaults.CrawlRate), defaults.CrawlBurst),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// SearchURL returns the listing URL for a zero-based page of term.
func (f *HTTPFetcher) SearchURL(term string, page int) string {
	u := f.baseURL + SearchPath + "?q=" + url.QueryEscape(term)
	if page > 0 {
		u += "&pg=" + strconv.Itoa(page)
	}
	return u
}

// FetchSearchPage implements PageFetcher.
func (f *HTTPFetcher) FetchSearchPage(ctx context.Context, term string, page int) (*ResultSet, error) {
	start := time.Now()
	doc, err := f.get(ctx, f.SearchURL(term, page))
	observeFetch(pageKindSearch, start, err)
	if err != nil {
		return nil, err
	}

	rs := &ResultSet{Rows: parseRows(doc)}
	rs.Pages, err = pageCountOf(doc, len(rs.Rows))
	if err != nil {
		return nil, err
	}

	slog.Debug("fetched search page",
		"term", term, "page", page, "rows", len(rs.Rows), "pages", rs.Pages)
	return rs, nil
}

// FetchDetailPage implements PageFetcher. Relative URLs are resolved
// against the base URL.
func (f *HTTPFetcher) FetchDetailPage(ctx context.Context, detailURL string) (string, error) {
	if strings.HasPrefix(detailURL, "/") {
		detailURL = f.baseURL + detailURL
	}

	start := time.Now()
	doc, err := f.get(ctx, detailURL)
	observeFetch(pageKindDetail, start, err)
	if err != nil {
		return "", err
	}

	return sugarOf(doc), nil
}

// PageCount implements PageFetcher.
func (f *HTTPFetcher) PageCount(ctx context.Context, term string) (int, error) {
	rs, err := f.FetchSearchPage(ctx, term, 0)
	if err != nil {
		return 0, err
	}
	return rs.Pages, nil
}

func (f *HTTPFetcher) get(ctx context.Context, rawURL string) (*goquery.Document, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, "rate limiter wait", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "create request", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-GB,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		code := errors.ErrCodeUnavailable
		if ctx.Err() != nil || isTimeout(err) {
			code = errors.ErrCodeTimeout
		}
		return nil, errors.WrapWithContext(code, "fetch page", err,
			map[string]any{"url": rawURL})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		code := errors.ErrCodeUnavailable
		if resp.StatusCode == http.StatusNotFound {
			code = errors.ErrCodeNotFound
		}
		return nil, errors.NewWithContext(code,
			fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			map[string]any{"url": rawURL, "status": resp.StatusCode})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxPageSize+1))
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeUnavailable, "read body", err,
			map[string]any{"url": rawURL})
	}
	if int64(len(body)) > f.maxPageSize {
		return nil, errors.NewWithContext(errors.ErrCodeUnavailable,
			fmt.Sprintf("page too large (exceeds %d bytes)", f.maxPageSize),
			map[string]any{"url": rawURL})
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInternal, "parse page", err,
			map[string]any{"url": rawURL})
	}
	return doc, nil
}

func isTimeout(err error) bool {
	ne, ok := err.(net.Error)
	return ok && ne.Timeout()
}

// parseRows extracts result rows. The prominent name, brand and summary
// block are direct children of each cell.
func parseRows(doc *goquery.Document) []Row {
	var rows []Row
	doc.Find(rowSelector).Each(func(_ int, td *goquery.Selection) {
		row := Row{
			Prominent: cleanInline(td.ChildrenFiltered(".prominent").First().Text()),
			Brand:     cleanInline(td.ChildrenFiltered(".brand").First().Text()),
		}

		if block := td.ChildrenFiltered("div").First(); block.Length() > 0 {
			row.Summary = normalizeText(blockText(block.Nodes[0]))
			block.Find("a").Each(func(_ int, a *goquery.Selection) {
				href, _ := a.Attr("href")
				row.Links = append(row.Links, Link{Label: cleanInline(a.Text()), URL: href})
			})
		}

		rows = append(rows, row)
	})
	return rows
}

func pageCountOf(doc *goquery.Document, rows int) (int, error) {
	if doc.Find(noResultSelector).Length() > 0 {
		return 0, nil
	}

	summary := doc.Find(resultSumSelector).First()
	if summary.Length() == 0 {
		if rows > 0 {
			return 1, nil
		}
		return 0, nil
	}

	return PageCount(cleanInline(summary.Text()))
}

// sugarOf returns the cell following the "Sugar" label in the nutrition
// panel, or DefaultSugar.
func sugarOf(doc *goquery.Document) string {
	sugar := DefaultSugar
	doc.Find(nutritionSelector).EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		cells := tr.Find("td")
		found := false
		cells.EachWithBreak(func(i int, td *goquery.Selection) bool {
			if cleanInline(td.Text()) == "Sugar" && i+1 < cells.Length() {
				sugar = cleanInline(cells.Eq(i + 1).Text())
				found = true
			}
			return !found
		})
		return !found
	})
	return sugar
}

func cleanInline(s string) string {
	return strings.Join(strings.Fields(normalizeText(s)), " ")
}
