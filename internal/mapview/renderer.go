// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package mapview

import (
	"math"

	"github.com/Chaitanya-116/CampusNavigator/internal/models"
)

// Mode identifies which renderer is active.
type Mode string

// Renderer modes. Flat is the initial mode; Terrain is entered only via an
// explicit toggle.
const (
	ModeFlat    Mode = "2d"
	ModeTerrain Mode = "3d"
)

// Renderer is the capability surface shared by both renderer adapters:
// viewport get/set and per-category layer-group visibility. Extra
// capabilities (basemaps, layout invalidation, pitch) live on the concrete
// adapters.
type Renderer interface {
	Mode() Mode
	Viewport() models.ViewportState
	SetViewport(models.ViewportState)
	ZoomRange() (min, max float64)
	GroupVisible(models.Category) bool
	SetGroupVisible(models.Category, bool)
	FitBounds(models.Bounds, float64)
}

// Basemap describes a selectable style layer and the maximum zoom its tile
// imagery supports. Requesting tiles past MaxZoom yields blank imagery, so
// the current zoom is clamped down when switching to a shallower basemap.
type Basemap struct {
	Name    string
	MaxZoom float64
}

// Basemaps available on the flat renderer, in picker order.
var Basemaps = []Basemap{
	{Name: "streets", MaxZoom: 19},
	{Name: "satellite", MaxZoom: 17},
	{Name: "terrain", MaxZoom: 15},
}

func basemapByName(name string) (Basemap, bool) {
	for _, b := range Basemaps {
		if b.Name == name {
			return b, true
		}
	}
	return Basemap{}, false
}

// clampZoom bounds z to [min, max].
func clampZoom(z, min, max float64) float64 {
	if z < min {
		return min
	}
	if z > max {
		return max
	}
	return z
}

// fitZoom derives a zoom level that frames bounds with the given padding
// fraction on each side. A degenerate box frames at the focus zoom of a
// single point. The world spans 360 degrees of longitude at zoom 0, halving
// per level.
func fitZoom(b models.Bounds, padding float64) float64 {
	latSpan := b.NorthEast.Lat - b.SouthWest.Lat
	lngSpan := b.NorthEast.Lng - b.SouthWest.Lng
	span := math.Max(latSpan, lngSpan) * (1 + 2*padding)
	if span <= 0 {
		return focusZoom
	}
	return math.Floor(math.Log2(360 / span))
}

// visibility tracks which category layer groups are attached to a renderer.
type visibility map[models.Category]bool

func allVisible() visibility {
	v := make(visibility, len(models.Categories))
	for _, c := range models.Categories {
		v[c] = true
	}
	return v
}

// FlatRenderer adapts the 2D tile map. It holds viewport, basemap, layer
// visibility, and an open-popup slot, mirroring what the browser-side tile
// library exposes.
type FlatRenderer struct {
	viewport models.ViewportState
	basemap  Basemap
	maxZoom  float64
	groups   visibility
	popup    string
	resizes  int
}

// NewFlatRenderer constructs the 2D renderer on the default basemap.
func NewFlatRenderer() *FlatRenderer {
	bm := Basemaps[0]
	return &FlatRenderer{
		basemap: bm,
		maxZoom: bm.MaxZoom,
		groups:  allVisible(),
	}
}

// Mode implements Renderer.
func (r *FlatRenderer) Mode() Mode { return ModeFlat }

// Viewport implements Renderer.
func (r *FlatRenderer) Viewport() models.ViewportState { return r.viewport }

// SetViewport implements Renderer, clamping zoom to the supported range.
func (r *FlatRenderer) SetViewport(v models.ViewportState) {
	min, max := r.ZoomRange()
	v.Zoom = clampZoom(v.Zoom, min, max)
	r.viewport = v
}

// ZoomRange implements Renderer. The maximum follows the active basemap.
func (r *FlatRenderer) ZoomRange() (float64, float64) { return 0, r.maxZoom }

// GroupVisible implements Renderer.
func (r *FlatRenderer) GroupVisible(c models.Category) bool { return r.groups[c] }

// SetGroupVisible implements Renderer.
func (r *FlatRenderer) SetGroupVisible(c models.Category, visible bool) {
	r.groups[c] = visible
}

// FitBounds implements Renderer.
func (r *FlatRenderer) FitBounds(b models.Bounds, padding float64) {
	if b.IsZero() {
		return
	}
	r.SetViewport(models.ViewportState{Center: b.Center(), Zoom: fitZoom(b, padding)})
}

// SetBasemap switches the style layer, re-clamps the maximum zoom to the new
// layer's supported maximum, and clamps the current zoom down if it now
// exceeds that maximum.
func (r *FlatRenderer) SetBasemap(b Basemap) {
	r.basemap = b
	r.maxZoom = b.MaxZoom
	if r.viewport.Zoom > r.maxZoom {
		r.viewport.Zoom = r.maxZoom
	}
}

// Basemap returns the active style layer.
func (r *FlatRenderer) Basemap() Basemap { return r.basemap }

// OpenPopup opens the label for the named marker, replacing any open popup.
func (r *FlatRenderer) OpenPopup(name string) { r.popup = name }

// ClosePopup closes any open popup.
func (r *FlatRenderer) ClosePopup() { r.popup = "" }

// Popup returns the name of the marker whose popup is open, or "".
func (r *FlatRenderer) Popup() string { return r.popup }

// InvalidateSize recomputes the renderer layout. Called after the container
// becomes visible again following a 3D->2D switch.
func (r *FlatRenderer) InvalidateSize() { r.resizes++ }

// Resizes returns how many layout invalidations have run. Used by tests to
// observe the deferred invalidation.
func (r *FlatRenderer) Resizes() int { return r.resizes }

// TerrainRenderer adapts the pseudo-3D view. It is constructed lazily on
// first toggle and kept for the life of the controller.
type TerrainRenderer struct {
	viewport models.ViewportState
	pitch    float64
	groups   visibility
}

// terrainDefaultPitch is the camera tilt applied when entering the 3D view.
const terrainDefaultPitch = 60

// NewTerrainRenderer constructs the pseudo-3D renderer.
func NewTerrainRenderer() *TerrainRenderer {
	return &TerrainRenderer{
		pitch:  terrainDefaultPitch,
		groups: allVisible(),
	}
}

// Mode implements Renderer.
func (r *TerrainRenderer) Mode() Mode { return ModeTerrain }

// Viewport implements Renderer.
func (r *TerrainRenderer) Viewport() models.ViewportState { return r.viewport }

// SetViewport implements Renderer, clamping zoom to the supported range.
func (r *TerrainRenderer) SetViewport(v models.ViewportState) {
	min, max := r.ZoomRange()
	v.Zoom = clampZoom(v.Zoom, min, max)
	r.viewport = v
}

// ZoomRange implements Renderer. The terrain imagery tops out below the
// street tiles.
func (r *TerrainRenderer) ZoomRange() (float64, float64) { return 0, 18 }

// GroupVisible implements Renderer.
func (r *TerrainRenderer) GroupVisible(c models.Category) bool { return r.groups[c] }

// SetGroupVisible implements Renderer.
func (r *TerrainRenderer) SetGroupVisible(c models.Category, visible bool) {
	r.groups[c] = visible
}

// FitBounds implements Renderer.
func (r *TerrainRenderer) FitBounds(b models.Bounds, padding float64) {
	if b.IsZero() {
		return
	}
	r.SetViewport(models.ViewportState{Center: b.Center(), Zoom: fitZoom(b, padding)})
}

// Pitch returns the camera tilt in degrees.
func (r *TerrainRenderer) Pitch() float64 { return r.pitch }
