// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package mapview

import (
	"testing"

	"github.com/Chaitanya-116/CampusNavigator/internal/models"
)

func TestClampZoom(t *testing.T) {
	tests := []struct {
		z, min, max, want float64
	}{
		{5, 0, 19, 5},
		{-1, 0, 19, 0},
		{25, 0, 19, 19},
		{0, 0, 19, 0},
		{19, 0, 19, 19},
	}
	for _, tt := range tests {
		if got := clampZoom(tt.z, tt.min, tt.max); got != tt.want {
			t.Errorf("clampZoom(%v, %v, %v) = %v, want %v", tt.z, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestFitZoomDegenerateBounds(t *testing.T) {
	p := models.LatLng{Lat: 40.1, Lng: -88.2}
	b := models.Bounds{SouthWest: p, NorthEast: p}
	if got := fitZoom(b, fitAllPadding); got != focusZoom {
		t.Errorf("fitZoom(point) = %v, want focus zoom %v", got, float64(focusZoom))
	}
}

func TestFitZoomWiderPaddingZoomsOut(t *testing.T) {
	b := models.Bounds{
		SouthWest: models.LatLng{Lat: 40.09, Lng: -88.24},
		NorthEast: models.LatLng{Lat: 40.12, Lng: -88.21},
	}
	narrow := fitZoom(b, fitAllPadding)
	wide := fitZoom(b, fitCategoryPadding)
	if wide > narrow {
		t.Errorf("wider padding must not zoom in: padding %v -> %v, padding %v -> %v",
			fitAllPadding, narrow, fitCategoryPadding, wide)
	}
}

func TestFlatRendererSetViewportClamps(t *testing.T) {
	r := NewFlatRenderer()
	r.SetViewport(models.ViewportState{Zoom: 50})
	if got := r.Viewport().Zoom; got != r.basemap.MaxZoom {
		t.Errorf("zoom = %v, want clamped to %v", got, r.basemap.MaxZoom)
	}
	r.SetViewport(models.ViewportState{Zoom: -3})
	if got := r.Viewport().Zoom; got != 0 {
		t.Errorf("zoom = %v, want clamped to 0", got)
	}
}

func TestFlatRendererSetBasemapReclamps(t *testing.T) {
	r := NewFlatRenderer()
	r.SetViewport(models.ViewportState{Zoom: 18})

	terrain, ok := basemapByName("terrain")
	if !ok {
		t.Fatal("terrain basemap missing")
	}
	r.SetBasemap(terrain)

	if got := r.Viewport().Zoom; got != terrain.MaxZoom {
		t.Errorf("zoom after shallower basemap = %v, want %v", got, terrain.MaxZoom)
	}
	if _, max := r.ZoomRange(); max != terrain.MaxZoom {
		t.Errorf("max zoom = %v, want %v", max, terrain.MaxZoom)
	}
}

func TestFlatRendererSetBasemapKeepsLowerZoom(t *testing.T) {
	r := NewFlatRenderer()
	r.SetViewport(models.ViewportState{Zoom: 10})

	satellite, _ := basemapByName("satellite")
	r.SetBasemap(satellite)

	if got := r.Viewport().Zoom; got != 10 {
		t.Errorf("zoom = %v, want unchanged 10", got)
	}
}

func TestFitBoundsZeroIsNoOp(t *testing.T) {
	r := NewFlatRenderer()
	r.SetViewport(models.ViewportState{Center: models.LatLng{Lat: 1, Lng: 2}, Zoom: 7})
	before := r.Viewport()
	r.FitBounds(models.Bounds{}, fitAllPadding)
	if r.Viewport() != before {
		t.Error("FitBounds with zero bounds must not move the viewport")
	}
}

func TestRendererGroupVisibility(t *testing.T) {
	for name, r := range map[string]Renderer{
		"flat":    NewFlatRenderer(),
		"terrain": NewTerrainRenderer(),
	} {
		t.Run(name, func(t *testing.T) {
			for _, c := range models.Categories {
				if !r.GroupVisible(c) {
					t.Errorf("%s should start visible", c)
				}
			}
			r.SetGroupVisible(models.CategoryDining, false)
			if r.GroupVisible(models.CategoryDining) {
				t.Error("dining should be hidden after SetGroupVisible(false)")
			}
		})
	}
}

func TestBasemapByName(t *testing.T) {
	for _, b := range Basemaps {
		got, ok := basemapByName(b.Name)
		if !ok || got != b {
			t.Errorf("basemapByName(%q) = %+v, %v", b.Name, got, ok)
		}
	}
	if _, ok := basemapByName("watercolor"); ok {
		t.Error("unknown basemap should not resolve")
	}
}
