// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package models

// Category is a canonical marker category. The set is fixed; free-text
// keywords resolve to one of these values through the alias table in
// internal/campus.
type Category string

// Canonical marker categories.
const (
	CategoryAcademic   Category = "academic"
	CategoryDining     Category = "dining"
	CategoryResidence  Category = "residence"
	CategoryRecreation Category = "recreation"
)

// Categories lists all canonical categories in display order.
var Categories = []Category{
	CategoryAcademic,
	CategoryDining,
	CategoryResidence,
	CategoryRecreation,
}

// Valid reports whether c is one of the canonical categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAcademic, CategoryDining, CategoryResidence, CategoryRecreation:
		return true
	}
	return false
}

// DisplayName returns the human-readable name shown on quick-link cards
// and in category suggestions.
func (c Category) DisplayName() string {
	switch c {
	case CategoryAcademic:
		return "Academic Buildings"
	case CategoryDining:
		return "Dining & Food"
	case CategoryResidence:
		return "Residence Halls"
	case CategoryRecreation:
		return "Recreation & Sports"
	}
	return string(c)
}

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Marker is a mapped campus point of interest. Markers are created once from
// the static table at map initialization and never mutated.
type Marker struct {
	Name        string   `json:"name"`
	Coordinates LatLng   `json:"coordinates"`
	Category    Category `json:"category"`
}

// Bounds is a geographic bounding box.
type Bounds struct {
	SouthWest LatLng `json:"south_west"`
	NorthEast LatLng `json:"north_east"`
}

// Extend grows the bounds to include p. The zero Bounds is extended to the
// degenerate box containing only p.
func (b Bounds) Extend(p LatLng) Bounds {
	if b.IsZero() {
		return Bounds{SouthWest: p, NorthEast: p}
	}
	if p.Lat < b.SouthWest.Lat {
		b.SouthWest.Lat = p.Lat
	}
	if p.Lng < b.SouthWest.Lng {
		b.SouthWest.Lng = p.Lng
	}
	if p.Lat > b.NorthEast.Lat {
		b.NorthEast.Lat = p.Lat
	}
	if p.Lng > b.NorthEast.Lng {
		b.NorthEast.Lng = p.Lng
	}
	return b
}

// IsZero reports whether the bounds are the zero value.
func (b Bounds) IsZero() bool {
	return b == Bounds{}
}

// Center returns the midpoint of the bounds.
func (b Bounds) Center() LatLng {
	return LatLng{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}

// ViewportState is the transient center/zoom captured from one renderer and
// applied to another during 2D/3D handoff. Zoom is clamped to the active
// renderer's supported range on application, not here.
type ViewportState struct {
	Center LatLng  `json:"center"`
	Zoom   float64 `json:"zoom"`
}
