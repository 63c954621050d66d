// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package search

import (
	"strings"

	"github.com/Chaitanya-116/CampusNavigator/internal/campus"
	"github.com/Chaitanya-116/CampusNavigator/internal/metrics"
	"github.com/Chaitanya-116/CampusNavigator/internal/models"
)

// DefaultMinQueryLength is the minimum query length that produces
// suggestions. An earlier variant required two characters; one character is
// the recommended threshold.
const DefaultMinQueryLength = 1

// Suggestions is the ordered result of a query: categories first, then
// locations. Both slices are empty (never nil-checked by callers) when
// nothing matches.
type Suggestions struct {
	Categories []models.CategorySuggestion
	Locations  []string
}

// Empty reports whether the suggestion panel should stay hidden.
func (s Suggestions) Empty() bool {
	return len(s.Categories) == 0 && len(s.Locations) == 0
}

// Engine filters the static location list and alias table against user
// queries. It is immutable after construction and safe for concurrent use.
type Engine struct {
	locations []string
	lowered   []string
	aliases   []campus.Alias
	minLen    int
}

// Option configures an Engine.
type Option func(*Engine)

// WithMinQueryLength overrides the minimum query length threshold.
func WithMinQueryLength(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.minLen = n
		}
	}
}

// WithDataset replaces the static campus dataset. Used by tests.
func WithDataset(locations []string, aliases []campus.Alias) Option {
	return func(e *Engine) {
		e.locations = locations
		e.aliases = aliases
	}
}

// NewEngine builds an engine over the static campus dataset.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		locations: campus.Locations,
		aliases:   campus.Aliases,
		minLen:    DefaultMinQueryLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.lowered = make([]string, len(e.locations))
	for i, name := range e.locations {
		e.lowered[i] = strings.ToLower(name)
	}
	return e
}

// Suggest returns the suggestion groups for query. Queries shorter than the
// configured threshold after trimming yield empty suggestions.
func (e *Engine) Suggest(query string) Suggestions {
	out := Suggestions{
		Categories: []models.CategorySuggestion{},
		Locations:  []string{},
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < e.minLen {
		return out
	}
	metrics.SearchQueries.Inc()

	// Category group: alias keys containing the query, one entry per
	// resolved canonical category, first alias wins.
	seen := make(map[models.Category]bool, len(models.Categories))
	for _, a := range e.aliases {
		if !strings.Contains(a.Keyword, q) || seen[a.Category] {
			continue
		}
		seen[a.Category] = true
		out.Categories = append(out.Categories, models.CategorySuggestion{
			Category: a.Category,
			Label:    a.Category.DisplayName(),
		})
	}

	// Location group in static list order.
	for i, lowered := range e.lowered {
		if strings.Contains(lowered, q) {
			out.Locations = append(out.Locations, e.locations[i])
		}
	}

	if out.Empty() {
		metrics.SearchQueriesEmpty.Inc()
	}
	return out
}

// MinQueryLength returns the configured threshold.
func (e *Engine) MinQueryLength() int {
	return e.minLen
}
