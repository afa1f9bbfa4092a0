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
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onsa/fatsecret-crawler/pkg/errors"
)

// newSiteServer serves the testdata fixtures: the listing for any search,
// the detail page for any other path under /calories-nutrition/.
func newSiteServer(t *testing.T) *httptest.Server {
	t.Helper()

	search := readFixture(t, "search.html")
	detail := readFixture(t, "detail.html")
	noResult := readFixture(t, "noresult.html")

	mux := http.NewServeMux()
	mux.HandleFunc(SearchPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		switch {
		case r.URL.Query().Get("q") == "zzzz":
			_, _ = w.Write(noResult)
		case r.URL.Query().Get("pg") == "1":
			_, _ = w.Write([]byte(strings.Replace(string(search), "Semi Skimmed Milk", "Page Two Milk", 1)))
		default:
			_, _ = w.Write(search)
		}
	})
	mux.HandleFunc("/calories-nutrition/generic/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(detail)
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return b
}

func newTestFetcher(ts *httptest.Server, opts ...FetcherOption) *HTTPFetcher {
	opts = append([]FetcherOption{WithBaseURL(ts.URL), WithRateLimit(0, 0)}, opts...)
	return NewHTTPFetcher(opts...)
}

func TestSearchURL(t *testing.T) {
	f := NewHTTPFetcher()
	assert.Equal(t,
		"http://www.fatsecret.co.uk/calories-nutrition/search?q=semi+skimmed+milk",
		f.SearchURL("semi skimmed milk", 0))
	assert.Equal(t,
		"http://www.fatsecret.co.uk/calories-nutrition/search?q=milk&pg=2",
		f.SearchURL("milk", 2))

	f = NewHTTPFetcher(WithBaseURL("https://example.com/"))
	assert.Equal(t, "https://example.com/calories-nutrition/search?q=milk", f.SearchURL("milk", 0))
}

func TestFetchSearchPage(t *testing.T) {
	ts := newSiteServer(t)
	f := newTestFetcher(ts)

	rs, err := f.FetchSearchPage(context.Background(), "milk", 0)
	require.NoError(t, err)
	assert.Equal(t, 2, rs.Pages)
	require.Len(t, rs.Rows, 4)

	first := rs.Rows[0]
	assert.Equal(t, "Semi Skimmed Milk", first.Prominent)
	assert.Empty(t, first.Brand)
	assert.Contains(t, first.Summary, "per 100ml - Calories: 50kcal")
	assert.Contains(t, first.Summary, "\n1 cup - 122kcal")
	href, ok := first.DetailURL()
	assert.True(t, ok)
	assert.Equal(t, "/calories-nutrition/generic/milk-semi-skimmed", href)

	assert.Equal(t, "Whole Milk", rs.Rows[1].Prominent)
	assert.Equal(t, "(Tesco)", rs.Rows[1].Brand)
	_, ok = rs.Rows[1].DetailURL()
	assert.False(t, ok)

	flour := rs.Rows[3]
	assert.Contains(t, flour.Summary, "per 1 oz - Calories")
	assert.Contains(t, flour.Summary, "1/2 tbsp - 14kcal")
}

func TestFetchSearchPageNoResults(t *testing.T) {
	ts := newSiteServer(t)
	f := newTestFetcher(ts)

	rs, err := f.FetchSearchPage(context.Background(), "zzzz", 0)
	require.NoError(t, err)
	assert.Zero(t, rs.Pages)
	assert.Empty(t, rs.Rows)

	n, err := f.PageCount(context.Background(), "zzzz")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPageCountFromFetcher(t *testing.T) {
	ts := newSiteServer(t)
	f := newTestFetcher(ts)

	n, err := f.PageCount(context.Background(), "milk")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestFetchDetailPage(t *testing.T) {
	ts := newSiteServer(t)
	f := newTestFetcher(ts)

	sugar, err := f.FetchDetailPage(context.Background(), "/calories-nutrition/generic/milk-semi-skimmed")
	require.NoError(t, err)
	assert.Equal(t, "4.7 g", sugar)

	sugar, err = f.FetchDetailPage(context.Background(), ts.URL+"/calories-nutrition/generic/milk")
	require.NoError(t, err)
	assert.Equal(t, "4.7 g", sugar)
}

func TestFetchDetailPageWithoutSugar(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<div id="content"><div class="nutpanel"><table><tr><td>Fat</td><td>1 g</td></tr></table></div></div>`))
	}))
	defer ts.Close()

	sugar, err := newTestFetcher(ts).FetchDetailPage(context.Background(), "/item")
	require.NoError(t, err)
	assert.Equal(t, DefaultSugar, sugar)
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		code   errors.ErrorCode
	}{
		{"not found", http.StatusNotFound, errors.ErrCodeNotFound},
		{"server error", http.StatusInternalServerError, errors.ErrCodeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer ts.Close()

			_, err := newTestFetcher(ts).FetchSearchPage(context.Background(), "milk", 0)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.CodeOf(err))
		})
	}
}

func TestFetchPageTooLarge(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", 2048)))
	}))
	defer ts.Close()

	_, err := newTestFetcher(ts, WithMaxPageSize(1024)).FetchSearchPage(context.Background(), "milk", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page too large")
}

func TestFetchTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	client := &http.Client{Timeout: 50 * time.Millisecond}
	_, err := newTestFetcher(ts, WithHTTPClient(client)).FetchSearchPage(context.Background(), "milk", 0)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeTimeout, errors.CodeOf(err))
}

func TestFetchSetsUserAgent(t *testing.T) {
	var got string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`<html></html>`))
	}))
	defer ts.Close()

	_, err := newTestFetcher(ts, WithUserAgent("test-agent")).FetchSearchPage(context.Background(), "milk", 0)
	require.NoError(t, err)
	assert.Equal(t, "test-agent", got)
}
