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
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/onsa/fatsecret-crawler/pkg/defaults"
	"github.com/onsa/fatsecret-crawler/pkg/errors"
	"github.com/onsa/fatsecret-crawler/pkg/header"
	"github.com/onsa/fatsecret-crawler/pkg/measurement"
	"github.com/onsa/fatsecret-crawler/pkg/serializer"
	"github.com/onsa/fatsecret-crawler/pkg/server"
	"github.com/onsa/fatsecret-crawler/pkg/unit"
)

// DefaultHits is the number of ingredients returned when hits is omitted.
const DefaultHits = 10

// Searcher finds ingredients for a search term.
type Searcher interface {
	Search(ctx context.Context, term string, hits int) ([]measurement.Ingredient, error)
}

// Handler serves the ingredient endpoints.
type Handler struct {
	searcher Searcher
	build    func(prominent, brand, summary string) (measurement.Ingredient, error)
}

// SearchResponse is the body returned by the ingredient search.
type SearchResponse struct {
	header.Header `yaml:",inline"`

	Term        string                   `json:"term" yaml:"term"`
	Hits        int                      `json:"hits" yaml:"hits"`
	Ingredients []measurement.Ingredient `json:"ingredients" yaml:"ingredients"`
}

// Routes returns the versioned API routes.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/ingredients": h.HandleIngredients,
		"/v1/parse":       h.HandleParse,
		"/v1/units":       h.HandleUnits,
	}
}

// HandleIngredients searches the site for q and returns up to hits
// ingredients with their measurements and density.
func (h *Handler) HandleIngredients(w http.ResponseWriter, r *http.Request) {
	if !server.RequireMethod(w, r, http.MethodGet) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.SearchHandlerTimeout)
	defer cancel()

	q := r.URL.Query()
	term := strings.TrimSpace(q.Get("q"))
	if term == "" {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Query parameter q is required", false, nil)
		return
	}

	hits, err := parseHits(q.Get("hits"))
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Invalid hits", false, map[string]any{"error": err.Error()})
		return
	}

	slog.Debug("search", "term", term, "hits", hits)

	ings, err := h.searcher.Search(ctx, term, hits)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to search ingredients",
			map[string]any{"term": term})
		return
	}
	if ings == nil {
		ings = []measurement.Ingredient{}
	}

	resp := SearchResponse{
		Term:        term,
		Hits:        len(ings),
		Ingredients: ings,
	}
	resp.Init(header.KindSearchResult, version)
	resp.Set("term", term)

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// parseHits reads the hits parameter, applying the default and the cap.
func parseHits(s string) (int, error) {
	if s == "" {
		return DefaultHits, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("hits must be an integer: %w", err)
	}
	if n < 1 {
		return 0, fmt.Errorf("hits must be positive, got %d", n)
	}
	return min(n, defaults.MaxHits), nil
}

// HandleParse builds an ingredient from a summary posted as plain text.
// The name and brand query parameters label the result.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	if !server.RequireMethod(w, r, http.MethodPost) {
		return
	}
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, defaults.MaxParseBodySize))
	if err != nil {
		server.WriteError(w, r, http.StatusRequestEntityTooLarge, errors.ErrCodeInvalidRequest,
			"Summary too large", false, map[string]any{"limit": defaults.MaxParseBodySize})
		return
	}

	summary := strings.TrimSpace(string(body))
	if summary == "" {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"Summary body cannot be empty", false, nil)
		return
	}

	q := r.URL.Query()
	ing, err := h.build(q.Get("name"), q.Get("brand"), summary)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to parse summary", nil)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, ing)
}

// HandleUnits lists the recognised units with their family and factors.
func (h *Handler) HandleUnits(w http.ResponseWriter, r *http.Request) {
	if !server.RequireMethod(w, r, http.MethodGet) {
		return
	}
	serializer.RespondJSON(w, http.StatusOK, unit.Table())
}
