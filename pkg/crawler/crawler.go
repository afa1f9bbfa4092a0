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
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/onsa/fatsecret-crawler/pkg/defaults"
	"github.com/onsa/fatsecret-crawler/pkg/density"
	"github.com/onsa/fatsecret-crawler/pkg/errors"
	"github.com/onsa/fatsecret-crawler/pkg/measurement"
	"github.com/onsa/fatsecret-crawler/pkg/parser"
)

// Crawler turns search results into ingredients.
type Crawler struct {
	fetcher     PageFetcher
	concurrency int
}

// Option is a functional option for configuring Crawler instances.
type Option func(*Crawler)

// WithConcurrency sets how many rows of a page are processed at once.
func WithConcurrency(n int) Option {
	return func(c *Crawler) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// New creates a Crawler reading pages from f.
func New(f PageFetcher, opts ...Option) *Crawler {
	c := &Crawler{
		fetcher:     f,
		concurrency: defaults.CrawlConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search returns up to hits ingredients for term, in result order.
// Rows whose summary cannot be parsed are skipped and do not count
// toward hits. A failed search page fetch aborts the search.
func (c *Crawler) Search(ctx context.Context, term string, hits int) ([]measurement.Ingredient, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "search term is required")
	}
	if hits < 1 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("hits must be positive, got %d", hits),
			map[string]any{"hits": hits})
	}

	first, err := c.fetcher.FetchSearchPage(ctx, term, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch first search page: %w", err)
	}

	out := make([]measurement.Ingredient, 0, min(hits, defaults.ResultsPerPage))
	for page := 0; page < max(first.Pages, 1) && len(out) < hits; page++ {
		rs := first
		if page > 0 {
			if rs, err = c.fetcher.FetchSearchPage(ctx, term, page); err != nil {
				return nil, fmt.Errorf("failed to fetch search page %d: %w", page, err)
			}
		}

		rows := rs.Rows
		for len(rows) > 0 && len(out) < hits {
			n := min(hits-len(out), len(rows))
			ings, err := c.processRows(ctx, rows[:n])
			if err != nil {
				return nil, err
			}
			out = append(out, ings...)
			rows = rows[n:]
		}
	}

	slog.Debug("search complete", "term", term, "hits", hits, "found", len(out))
	return out, nil
}

// processRows builds the ingredients of rows concurrently and returns the
// successful ones in row order.
func (c *Crawler) processRows(ctx context.Context, rows []Row) ([]measurement.Ingredient, error) {
	results := make([]*measurement.Ingredient, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, row := range rows {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ing, err := c.processRow(gctx, row)
			if err != nil {
				rowsProcessed.WithLabelValues(rowResultSkipped).Inc()
				slog.Warn("skipping result row", "prominent", row.Prominent, "error", err)
				return nil
			}
			rowsProcessed.WithLabelValues(rowResultParsed).Inc()
			results[i] = &ing
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, "search canceled", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeTimeout, "search canceled", err)
	}

	out := make([]measurement.Ingredient, 0, len(rows))
	for _, ing := range results {
		if ing != nil {
			out = append(out, *ing)
		}
	}
	return out, nil
}

func (c *Crawler) processRow(ctx context.Context, row Row) (measurement.Ingredient, error) {
	ms, err := parser.ParseSummary(row.Summary)
	if err != nil {
		return measurement.Ingredient{}, err
	}

	if href, ok := row.DetailURL(); ok && len(ms) > 0 {
		ms[0].Sugar = c.sugar(ctx, href)
	}

	return finish(row.Prominent, row.Brand, ms), nil
}

// sugar fetches the sugar content from a detail page. Failures are logged
// and leave sugar absent.
func (c *Crawler) sugar(ctx context.Context, href string) *measurement.Macro {
	text, err := c.fetcher.FetchDetailPage(ctx, href)
	if err != nil {
		slog.Warn("failed to fetch detail page", "url", href, "error", err)
		return nil
	}
	macro, err := parser.ParseMacro(measurement.Sugar, text)
	if err != nil {
		slog.Debug("unparsable sugar", "url", href, "text", text, "error", err)
		return nil
	}
	return macro
}

// BuildIngredient parses an already fetched summary into an ingredient
// with vague servings removed and density derived where possible.
func BuildIngredient(prominent, brand, summary string) (measurement.Ingredient, error) {
	ms, err := parser.ParseSummary(summary)
	if err != nil {
		return measurement.Ingredient{}, err
	}
	return finish(prominent, brand, ms), nil
}

func finish(prominent, brand string, ms []measurement.Measurement) measurement.Ingredient {
	ing := measurement.Ingredient{
		Prominent:    strings.TrimSpace(prominent),
		Brand:        strings.TrimSpace(brand),
		Measurements: ms,
	}
	ing.Clear()

	if err := density.Annotate(&ing); err != nil {
		slog.Warn("failed to derive density", "ingredient", ing.Prominent, "error", err)
	}
	if ing.Density != nil {
		densityDerived.Inc()
	}
	return ing
}
