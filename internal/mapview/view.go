// Package mapview holds the map view-model: one view, at most one marker,
// always representing the current location.
package mapview

import (
	"sync"

	"github.com/urbangrow/urbangrow/internal/domain"
)

const (
	defaultZoom = 13
	tileURL     = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	attribution = "© OpenStreetMap contributors"
)

// Marker is the single "current location" pin.
type Marker struct {
	Coordinate domain.Coordinate `json:"coordinate"`
	Label      string            `json:"label"`
}

// Snapshot is an immutable copy of the view state for rendering.
type Snapshot struct {
	Initialized bool              `json:"initialized"`
	Center      domain.Coordinate `json:"center"`
	Zoom        int               `json:"zoom"`
	TileURL     string            `json:"tile_url"`
	Attribution string            `json:"attribution"`
	Marker      *Marker           `json:"marker,omitempty"`
}

// View is constructed once and shared by reference. Handlers run
// concurrently, so mutation is serialized; last write wins.
type View struct {
	mu          sync.Mutex
	initialized bool
	center      domain.Coordinate
	marker      *Marker
}

// New creates an empty view
func New() *View {
	return &View{}
}

// Show re-centers the view on the coordinate at the fixed zoom level and
// creates or moves the single marker.
func (v *View) Show(coord domain.Coordinate, label string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.initialized = true
	v.center = coord

	if v.marker == nil {
		v.marker = &Marker{Coordinate: coord, Label: label}
		return
	}
	v.marker.Coordinate = coord
	v.marker.Label = label
}

// Snapshot returns a copy of the current view state
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	snap := Snapshot{
		Initialized: v.initialized,
		Center:      v.center,
		Zoom:        defaultZoom,
		TileURL:     tileURL,
		Attribution: attribution,
	}
	if v.marker != nil {
		m := *v.marker
		snap.Marker = &m
	}
	return snap
}
