// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package search

import (
	"reflect"
	"testing"

	"github.com/Chaitanya-116/CampusNavigator/internal/campus"
	"github.com/Chaitanya-116/CampusNavigator/internal/models"
)

func categoryList(s Suggestions) []models.Category {
	out := make([]models.Category, len(s.Categories))
	for i, c := range s.Categories {
		out[i] = c.Category
	}
	return out
}

func TestSuggestEmptyQuery(t *testing.T) {
	e := NewEngine()
	for _, q := range []string{"", "   ", "\t"} {
		s := e.Suggest(q)
		if !s.Empty() {
			t.Errorf("Suggest(%q) should be empty, got %d categories, %d locations",
				q, len(s.Categories), len(s.Locations))
		}
	}
}

func TestSuggestSingleCharacter(t *testing.T) {
	e := NewEngine()
	s := e.Suggest("g")
	if s.Empty() {
		t.Fatal("one-character query should produce suggestions at the default threshold")
	}
}

func TestSuggestMinQueryLengthOption(t *testing.T) {
	e := NewEngine(WithMinQueryLength(3))
	if s := e.Suggest("gy"); !s.Empty() {
		t.Errorf("query below threshold should be empty, got %+v", s)
	}
	if s := e.Suggest("gym"); s.Empty() {
		t.Error("query at threshold should produce suggestions")
	}
}

func TestSuggestCategoryResolution(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		query          string
		wantCategories []models.Category
	}{
		{"gy", []models.Category{models.CategoryRecreation}},
		{"gym", []models.Category{models.CategoryRecreation}},
		{"dorm", []models.Category{models.CategoryResidence}},
		{"food", []models.Category{models.CategoryDining}},
		{"library", []models.Category{models.CategoryAcademic}},
		{"zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := categoryList(e.Suggest(tt.query))
			if len(got) == 0 && len(tt.wantCategories) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.wantCategories) {
				t.Errorf("Suggest(%q) categories = %v, want %v", tt.query, got, tt.wantCategories)
			}
		})
	}
}

func TestSuggestCaseInsensitive(t *testing.T) {
	e := NewEngine()
	lower := e.Suggest("library")
	upper := e.Suggest("LIBRARY")
	if !reflect.DeepEqual(lower, upper) {
		t.Errorf("case should not matter: %+v vs %+v", lower, upper)
	}
}

func TestSuggestDedupByCategory(t *testing.T) {
	e := NewEngine()

	// "ca" matches the aliases "cafeteria" and "cafe", both dining. Exactly
	// one dining entry must remain, labeled from the canonical category.
	s := e.Suggest("ca")
	dining := 0
	for _, c := range s.Categories {
		if c.Category == models.CategoryDining {
			dining++
			if c.Label != "Dining & Food" {
				t.Errorf("dining label = %q, want %q", c.Label, "Dining & Food")
			}
		}
	}
	if dining != 1 {
		t.Errorf("expected exactly 1 dining suggestion, got %d", dining)
	}
}

func TestSuggestLocationOrder(t *testing.T) {
	e := NewEngine()
	s := e.Suggest("hall")

	want := []string{"Science Hall", "Residence Hall A", "Residence Hall B"}
	if !reflect.DeepEqual(s.Locations, want) {
		t.Errorf("Suggest(\"hall\") locations = %v, want %v (static list order)", s.Locations, want)
	}
}

func TestSuggestCategoriesPrecedeLocations(t *testing.T) {
	// A custom dataset where the same keyword matches both groups.
	e := NewEngine(WithDataset(
		[]string{"Gymnasium", "Old Gym Annex"},
		[]campus.Alias{{Keyword: "gym", Category: models.CategoryRecreation}},
	))

	s := e.Suggest("gym")
	if len(s.Categories) != 1 || s.Categories[0].Category != models.CategoryRecreation {
		t.Fatalf("expected one recreation category suggestion, got %+v", s.Categories)
	}
	if want := []string{"Gymnasium", "Old Gym Annex"}; !reflect.DeepEqual(s.Locations, want) {
		t.Errorf("locations = %v, want %v", s.Locations, want)
	}
}

func TestSuggestFreshPerCall(t *testing.T) {
	e := NewEngine()
	first := e.Suggest("hall")
	first.Locations[0] = "mutated"

	second := e.Suggest("hall")
	if second.Locations[0] == "mutated" {
		t.Error("results must be computed fresh per call, not shared")
	}
}

func TestMinQueryLength(t *testing.T) {
	if got := NewEngine().MinQueryLength(); got != DefaultMinQueryLength {
		t.Errorf("MinQueryLength() = %d, want %d", got, DefaultMinQueryLength)
	}
}
