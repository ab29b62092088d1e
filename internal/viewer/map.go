// Package viewer builds the render models for the single-page map viewer.
// Every builder is a pure function of (dataset, selection); the only mutable
// state is the Session's current selection.
package viewer

import (
	"time"

	"github.com/couchcryptid/coastal-vuln-viewer/internal/domain"
	"github.com/couchcryptid/coastal-vuln-viewer/internal/store"
)

// Fixed view parameters, matching the survey's published map.
const (
	DefaultCenterLat = 11.230 // Tacloban City overview
	DefaultCenterLon = 125.003
	DefaultZoom      = 13.5
	SelectedZoom     = 15

	fillOpacity      = 0.6
	outlineColor     = "black"
	selectedWeight   = 4
	unselectedWeight = 1
)

// MapView is the full map surface for one render cycle.
type MapView struct {
	Center      domain.LatLng `json:"center"`
	Zoom        float64       `json:"zoom"`
	Fullscreen  bool          `json:"fullscreen"`
	Polygons    []MapPolygon  `json:"polygons"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// MapPolygon is one landmark boundary, styled by its severity bucket.
type MapPolygon struct {
	Name        string        `json:"name"`
	Ring        domain.Ring   `json:"ring"`
	Index       float64       `json:"index"`
	Severity    string        `json:"severity"`
	FillColor   string        `json:"fill_color"`
	FillOpacity float64       `json:"fill_opacity"`
	Outline     string        `json:"outline"`
	Weight      int           `json:"weight"`
	Selected    bool          `json:"selected"`
	Centroid    domain.LatLng `json:"centroid"`
}

// BuildMapView renders every landmark boundary as a filled polygon and sets
// the view: the fixed city overview with no selection, or the selected
// boundary's centroid at the closer zoom. A selection that does not resolve
// to a boundary is a contract violation and surfaces store.ErrNotFound.
func BuildMapView(ds *store.Dataset, selection string) (MapView, error) {
	view := MapView{
		Center:      domain.LatLng{Lat: DefaultCenterLat, Lon: DefaultCenterLon},
		Zoom:        DefaultZoom,
		Fullscreen:  true,
		GeneratedAt: domain.Now(),
	}

	if selection != "" {
		b, err := ds.Boundary(selection)
		if err != nil {
			return MapView{}, err
		}
		view.Center = b.Ring.Centroid()
		view.Zoom = SelectedZoom
	}

	for _, l := range ds.Landmarks() {
		b, err := ds.Boundary(l.Name)
		if err != nil {
			return MapView{}, err
		}
		index := domain.ComputeIndex(l)
		severity := domain.Classify(index)
		selected := l.Name == selection

		weight := unselectedWeight
		if selected {
			weight = selectedWeight
		}

		view.Polygons = append(view.Polygons, MapPolygon{
			Name:        l.Name,
			Ring:        b.Ring,
			Index:       index,
			Severity:    severity.String(),
			FillColor:   severity.String(),
			FillOpacity: fillOpacity,
			Outline:     outlineColor,
			Weight:      weight,
			Selected:    selected,
			Centroid:    b.Ring.Centroid(),
		})
	}
	return view, nil
}
