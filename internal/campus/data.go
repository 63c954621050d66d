// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package campus

import (
	"strings"

	"github.com/Chaitanya-116/CampusNavigator/internal/models"
)

// Locations is the static list of searchable campus places, in the order
// they appear in location suggestions.
var Locations = []string{
	"Main Library", "Student Center", "Engineering Building", "Science Hall",
	"Administration Building", "Cafeteria", "Gymnasium", "Art Building",
	"Business School", "Computer Lab", "Auditorium", "Medical Center",
	"Residence Hall A", "Residence Hall B", "Parking Garage",
	"Campus Store", "Career Services", "Financial Aid Office",
}

// Markers is the static marker table. Built once, never mutated; the map
// view controller copies from it at initialization.
var Markers = []models.Marker{
	{Name: "Main Library", Coordinates: models.LatLng{Lat: 40.1031, Lng: -88.2282}, Category: models.CategoryAcademic},
	{Name: "Engineering Building", Coordinates: models.LatLng{Lat: 40.1110, Lng: -88.2270}, Category: models.CategoryAcademic},
	{Name: "Science Hall", Coordinates: models.LatLng{Lat: 40.1086, Lng: -88.2253}, Category: models.CategoryAcademic},
	{Name: "Art Building", Coordinates: models.LatLng{Lat: 40.1022, Lng: -88.2201}, Category: models.CategoryAcademic},
	{Name: "Business School", Coordinates: models.LatLng{Lat: 40.1005, Lng: -88.2310}, Category: models.CategoryAcademic},
	{Name: "Computer Lab", Coordinates: models.LatLng{Lat: 40.1138, Lng: -88.2249}, Category: models.CategoryAcademic},
	{Name: "Cafeteria", Coordinates: models.LatLng{Lat: 40.1065, Lng: -88.2298}, Category: models.CategoryDining},
	{Name: "Student Center Food Court", Coordinates: models.LatLng{Lat: 40.1049, Lng: -88.2289}, Category: models.CategoryDining},
	{Name: "North Campus Cafe", Coordinates: models.LatLng{Lat: 40.1129, Lng: -88.2292}, Category: models.CategoryDining},
	{Name: "Residence Hall A", Coordinates: models.LatLng{Lat: 40.0981, Lng: -88.2225}, Category: models.CategoryResidence},
	{Name: "Residence Hall B", Coordinates: models.LatLng{Lat: 40.0975, Lng: -88.2261}, Category: models.CategoryResidence},
	{Name: "Graduate Apartments", Coordinates: models.LatLng{Lat: 40.0960, Lng: -88.2300}, Category: models.CategoryResidence},
	{Name: "Gymnasium", Coordinates: models.LatLng{Lat: 40.1008, Lng: -88.2358}, Category: models.CategoryRecreation},
	{Name: "Aquatic Center", Coordinates: models.LatLng{Lat: 40.0999, Lng: -88.2371}, Category: models.CategoryRecreation},
	{Name: "Intramural Fields", Coordinates: models.LatLng{Lat: 40.0945, Lng: -88.2340}, Category: models.CategoryRecreation},
}

// Alias maps a free-text keyword to a canonical category. Order matters:
// the suggestion engine deduplicates by category keeping the first matching
// alias, so more common keywords come first.
type Alias struct {
	Keyword  string
	Category models.Category
}

// Aliases is the static keyword table for category resolution.
var Aliases = []Alias{
	{Keyword: "academic", Category: models.CategoryAcademic},
	{Keyword: "class", Category: models.CategoryAcademic},
	{Keyword: "classroom", Category: models.CategoryAcademic},
	{Keyword: "lecture", Category: models.CategoryAcademic},
	{Keyword: "library", Category: models.CategoryAcademic},
	{Keyword: "lab", Category: models.CategoryAcademic},
	{Keyword: "dining", Category: models.CategoryDining},
	{Keyword: "food", Category: models.CategoryDining},
	{Keyword: "cafeteria", Category: models.CategoryDining},
	{Keyword: "cafe", Category: models.CategoryDining},
	{Keyword: "restaurant", Category: models.CategoryDining},
	{Keyword: "residence", Category: models.CategoryResidence},
	{Keyword: "dorm", Category: models.CategoryResidence},
	{Keyword: "dormitory", Category: models.CategoryResidence},
	{Keyword: "housing", Category: models.CategoryResidence},
	{Keyword: "apartment", Category: models.CategoryResidence},
	{Keyword: "recreation", Category: models.CategoryRecreation},
	{Keyword: "gym", Category: models.CategoryRecreation},
	{Keyword: "sports", Category: models.CategoryRecreation},
	{Keyword: "fitness", Category: models.CategoryRecreation},
	{Keyword: "pool", Category: models.CategoryRecreation},
}

// ResolveAlias resolves free text to a canonical category by exact match
// after case normalization. The second return is false when no alias or
// canonical category name matches.
func ResolveAlias(text string) (models.Category, bool) {
	norm := strings.ToLower(strings.TrimSpace(text))
	if norm == "" {
		return "", false
	}
	for _, a := range Aliases {
		if a.Keyword == norm {
			return a.Category, true
		}
	}
	// Canonical names resolve to themselves.
	if c := models.Category(norm); c.Valid() {
		return c, true
	}
	return "", false
}

// MarkersByCategory returns the markers belonging to cat, preserving table
// order. An invalid category returns the full table.
func MarkersByCategory(cat models.Category) []models.Marker {
	if !cat.Valid() {
		out := make([]models.Marker, len(Markers))
		copy(out, Markers)
		return out
	}
	var out []models.Marker
	for _, m := range Markers {
		if m.Category == cat {
			out = append(out, m)
		}
	}
	return out
}

// AllBounds returns the bounding box of every marker in the table.
func AllBounds() models.Bounds {
	var b models.Bounds
	for _, m := range Markers {
		b = b.Extend(m.Coordinates)
	}
	return b
}
