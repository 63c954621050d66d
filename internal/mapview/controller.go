// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package mapview

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Chaitanya-116/CampusNavigator/internal/campus"
	"github.com/Chaitanya-116/CampusNavigator/internal/metrics"
	"github.com/Chaitanya-116/CampusNavigator/internal/models"
)

// View framing constants.
const (
	// focusZoom is the fixed close zoom used when centering on a single
	// searched marker.
	focusZoom = 18

	// fitAllPadding frames the full marker set.
	fitAllPadding = 0.15

	// fitCategoryPadding frames a single category. Wider than the default
	// so a small cluster does not hug the viewport edges.
	fitCategoryPadding = 0.2
)

// ErrUnknownBasemap is returned by SetBasemap for a name not in Basemaps.
var ErrUnknownBasemap = errors.New("unknown basemap")

// Config tunes controller timing. Zero values take the defaults below.
type Config struct {
	// RetryAttempts bounds renderer construction retries when the backend
	// loads asynchronously. Default 10.
	RetryAttempts int

	// RetryInterval is the fixed wait between construction attempts.
	// Default 200ms.
	RetryInterval time.Duration

	// HighlightDuration is how long a quick-link card stays highlighted
	// after a category suggestion is selected. Default 1.5s.
	HighlightDuration time.Duration

	// ResizeDelay defers the 2D layout invalidation after a 3D->2D switch
	// until the container is visible again. Default 150ms.
	ResizeDelay time.Duration
}

func (c Config) withDefaults() Config {
	if c.RetryAttempts <= 0 {
		c.RetryAttempts = 10
	}
	if c.RetryInterval <= 0 {
		c.RetryInterval = 200 * time.Millisecond
	}
	if c.HighlightDuration <= 0 {
		c.HighlightDuration = 1500 * time.Millisecond
	}
	if c.ResizeDelay <= 0 {
		c.ResizeDelay = 150 * time.Millisecond
	}
	return c
}

// FocusKind classifies what a FocusOnSearch call resolved to.
type FocusKind string

// Focus outcomes.
const (
	FocusCategory FocusKind = "category"
	FocusMarker   FocusKind = "marker"
	FocusNone     FocusKind = "none"
)

// FocusResult reports the outcome of FocusOnSearch so the front-end can
// mirror it (highlight a card, open a popup, or do nothing).
type FocusResult struct {
	Kind     FocusKind       `json:"kind"`
	Category models.Category `json:"category,omitempty"`
	Marker   *models.Marker  `json:"marker,omitempty"`
}

// Controller owns the map view state for one page load: the active renderer,
// the marker set, category layer visibility, and the transient card
// highlight. All methods are safe for concurrent use; overlapping calls
// resolve last-write-wins.
type Controller struct {
	mu      sync.Mutex
	cfg     Config
	factory RendererFactory
	markers []models.Marker

	flat    *FlatRenderer
	terrain *TerrainRenderer
	mode    Mode

	failMsg string

	highlighted    models.Category
	highlightTimer *time.Timer
	resizeTimer    *time.Timer
}

// NewController builds a controller over the static campus marker table.
// Renderer construction is deferred until the first operation that needs it.
func NewController(factory RendererFactory, cfg Config) *Controller {
	if factory == nil {
		factory = DefaultFactory{}
	}
	markers := make([]models.Marker, len(campus.Markers))
	copy(markers, campus.Markers)
	return &Controller{
		cfg:     cfg.withDefaults(),
		factory: factory,
		markers: markers,
		mode:    ModeFlat,
	}
}

// Init eagerly constructs the 2D renderer and populates markers. Idempotent;
// returns ErrRendererUnavailable once the retry budget has been exhausted.
func (c *Controller) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ensureInitLocked()
}

func (c *Controller) ensureInitLocked() error {
	if c.failMsg != "" {
		return fmt.Errorf("%w: %s", ErrRendererUnavailable, c.failMsg)
	}
	if c.flat != nil {
		return nil
	}

	policy := retryPolicy{Attempts: c.cfg.RetryAttempts, Interval: c.cfg.RetryInterval}
	var flat *FlatRenderer
	err := policy.run(func() error {
		var buildErr error
		flat, buildErr = c.factory.Flat()
		return buildErr
	})
	if err != nil {
		c.failMsg = "Map failed to load. Please refresh the page."
		metrics.MapRendererInitFailures.Inc()
		return err
	}

	// Marker population: every group attached, view fit to all bounds.
	c.flat = flat
	c.flat.FitBounds(c.allBoundsLocked(), fitAllPadding)
	return nil
}

// FailureMessage returns the visible error for the map container and true
// once the controller has entered its terminal failure state.
func (c *Controller) FailureMessage() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failMsg, c.failMsg != ""
}

// Mode returns the active renderer mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// activeLocked returns the renderer currently driving the view.
func (c *Controller) activeLocked() Renderer {
	if c.mode == ModeTerrain && c.terrain != nil {
		return c.terrain
	}
	return c.flat
}

func (c *Controller) allBoundsLocked() models.Bounds {
	var b models.Bounds
	for _, m := range c.markers {
		b = b.Extend(m.Coordinates)
	}
	return b
}

func (c *Controller) categoryBoundsLocked(cat models.Category) models.Bounds {
	var b models.Bounds
	for _, m := range c.markers {
		if m.Category == cat {
			b = b.Extend(m.Coordinates)
		}
	}
	return b
}

// Toggle switches between the 2D and pseudo-3D renderers, handing the
// viewport across with the documented asymmetric zoom adjustment. The
// terrain renderer is constructed lazily on first use.
func (c *Controller) Toggle() (Mode, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ensureInitLocked(); err != nil {
		return c.mode, err
	}
	metrics.MapOperations.WithLabelValues("toggle").Inc()

	if c.mode == ModeFlat {
		if c.terrain == nil {
			policy := retryPolicy{Attempts: c.cfg.RetryAttempts, Interval: c.cfg.RetryInterval}
			var terrain *TerrainRenderer
			err := policy.run(func() error {
				var buildErr error
				terrain, buildErr = c.factory.Terrain()
				return buildErr
			})
			if err != nil {
				return c.mode, err
			}
			c.terrain = terrain
		}
		vp := c.flat.Viewport()
		if vp.Zoom > 0 {
			vp.Zoom--
		}
		c.terrain.SetViewport(vp)
		c.syncVisibilityLocked(c.flat, c.terrain)
		c.mode = ModeTerrain
		return c.mode, nil
	}

	vp := c.terrain.Viewport()
	vp.Zoom++
	c.flat.SetViewport(vp)
	c.syncVisibilityLocked(c.terrain, c.flat)
	c.mode = ModeFlat
	c.scheduleResizeLocked()
	return c.mode, nil
}

// forceFlatLocked transitions back to 2D before an operation defined only in
// 2D mode. No-op when already flat.
func (c *Controller) forceFlatLocked() {
	if c.mode != ModeTerrain || c.terrain == nil {
		c.mode = ModeFlat
		return
	}
	vp := c.terrain.Viewport()
	vp.Zoom++
	c.flat.SetViewport(vp)
	c.syncVisibilityLocked(c.terrain, c.flat)
	c.mode = ModeFlat
	c.scheduleResizeLocked()
}

func (c *Controller) syncVisibilityLocked(from, to Renderer) {
	for _, cat := range models.Categories {
		to.SetGroupVisible(cat, from.GroupVisible(cat))
	}
}

// scheduleResizeLocked defers a layout invalidation so the 2D container has
// become visible again by the time it runs. Fire-and-forget; a second switch
// before the timer fires supersedes it.
func (c *Controller) scheduleResizeLocked() {
	if c.resizeTimer != nil {
		c.resizeTimer.Stop()
	}
	c.resizeTimer = time.AfterFunc(c.cfg.ResizeDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.flat != nil {
			c.flat.InvalidateSize()
		}
	})
}

// FilterByCategory shows exactly one category's marker group and fits the
// view to it. An unrecognized category shows every group and fits all
// markers. Invoked while in 3D mode it first forces a transition to 2D.
func (c *Controller) FilterByCategory(cat models.Category) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureInitLocked(); err != nil {
		return err
	}
	metrics.MapOperations.WithLabelValues("filter").Inc()
	c.forceFlatLocked()
	c.filterLocked(cat)
	return nil
}

func (c *Controller) filterLocked(cat models.Category) {
	c.flat.ClosePopup()
	if !cat.Valid() {
		for _, g := range models.Categories {
			c.flat.SetGroupVisible(g, true)
		}
		c.flat.FitBounds(c.allBoundsLocked(), fitAllPadding)
		return
	}
	for _, g := range models.Categories {
		c.flat.SetGroupVisible(g, g == cat)
	}
	c.flat.FitBounds(c.categoryBoundsLocked(cat), fitCategoryPadding)
}

// FocusOnSearch resolves query against the alias table first; a category hit
// delegates to FilterByCategory and highlights the matching quick-link card.
// Otherwise the currently rendered markers are scanned for a title containing
// the query and the view centers on the first hit with its popup open. An
// uninitialized map is initialized lazily and the scan retried once.
func (c *Controller) FocusOnSearch(query string) (FocusResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureInitLocked(); err != nil {
		return FocusResult{Kind: FocusNone}, err
	}
	metrics.MapOperations.WithLabelValues("focus").Inc()
	c.forceFlatLocked()

	if cat, ok := campus.ResolveAlias(query); ok {
		c.filterLocked(cat)
		c.highlightLocked(cat)
		return FocusResult{Kind: FocusCategory, Category: cat}, nil
	}

	if m, ok := c.findRenderedMarkerLocked(query); ok {
		c.flat.SetViewport(models.ViewportState{Center: m.Coordinates, Zoom: focusZoom})
		c.flat.OpenPopup(m.Name)
		return FocusResult{Kind: FocusMarker, Marker: &m}, nil
	}

	return FocusResult{Kind: FocusNone}, nil
}

// findRenderedMarkerLocked scans markers whose category group is currently
// visible for a case-insensitive title substring match.
func (c *Controller) findRenderedMarkerLocked(query string) (models.Marker, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return models.Marker{}, false
	}
	for _, m := range c.markers {
		if !c.flat.GroupVisible(m.Category) {
			continue
		}
		if strings.Contains(strings.ToLower(m.Name), q) {
			return m, true
		}
	}
	return models.Marker{}, false
}

// highlightLocked marks a quick-link card highlighted and schedules its
// removal. A newer highlight supersedes a pending clear.
func (c *Controller) highlightLocked(cat models.Category) {
	c.highlighted = cat
	if c.highlightTimer != nil {
		c.highlightTimer.Stop()
	}
	c.highlightTimer = time.AfterFunc(c.cfg.HighlightDuration, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.highlighted == cat {
			c.highlighted = ""
		}
	})
}

// SetBasemap switches the 2D style layer. The renderer re-clamps its zoom
// ceiling to the new layer's supported maximum.
func (c *Controller) SetBasemap(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureInitLocked(); err != nil {
		return err
	}
	bm, ok := basemapByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownBasemap, name)
	}
	metrics.MapOperations.WithLabelValues("basemap").Inc()
	c.flat.SetBasemap(bm)
	return nil
}

// ZoomIn raises the active renderer's zoom by one level, clamped.
func (c *Controller) ZoomIn() error { return c.zoomBy(1) }

// ZoomOut lowers the active renderer's zoom by one level, clamped.
func (c *Controller) ZoomOut() error { return c.zoomBy(-1) }

func (c *Controller) zoomBy(delta float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureInitLocked(); err != nil {
		return err
	}
	r := c.activeLocked()
	vp := r.Viewport()
	vp.Zoom += delta
	r.SetViewport(vp)
	return nil
}

// State snapshots the current view for the API. The session id is filled in
// by the caller.
func (c *Controller) State() models.MapStateResponse {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := models.MapStateResponse{Mode: string(c.mode)}
	if c.flat == nil {
		return st
	}

	active := c.activeLocked()
	st.Viewport = active.Viewport()
	st.Basemap = c.flat.Basemap().Name
	for _, cat := range models.Categories {
		if active.GroupVisible(cat) {
			st.VisibleGroups = append(st.VisibleGroups, cat)
		}
	}
	if c.highlighted != "" {
		st.HighlightedCard = "card-" + string(c.highlighted)
	}
	st.OpenPopup = c.flat.Popup()
	return st
}

// Highlighted returns the currently highlighted category, or "".
func (c *Controller) Highlighted() models.Category {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.highlighted
}

// Close stops any pending timers. The controller must not be used after.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.highlightTimer != nil {
		c.highlightTimer.Stop()
	}
	if c.resizeTimer != nil {
		c.resizeTimer.Stop()
	}
}
