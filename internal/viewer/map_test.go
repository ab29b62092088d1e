package viewer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/coastal-vuln-viewer/internal/store"
	"github.com/couchcryptid/coastal-vuln-viewer/internal/viewer"
)

func TestBuildMapView_NoSelection(t *testing.T) {
	ds := newTestDataset(t)

	view, err := viewer.BuildMapView(ds, "")
	require.NoError(t, err)

	assert.Equal(t, viewer.DefaultCenterLat, view.Center.Lat)
	assert.Equal(t, viewer.DefaultCenterLon, view.Center.Lon)
	assert.Equal(t, viewer.DefaultZoom, view.Zoom)
	assert.True(t, view.Fullscreen)

	require.Len(t, view.Polygons, 2)
	for _, p := range view.Polygons {
		assert.False(t, p.Selected, p.Name)
		assert.Equal(t, 1, p.Weight, p.Name)
		assert.Equal(t, "black", p.Outline, p.Name)
		assert.Equal(t, 0.6, p.FillOpacity, p.Name)
	}
}

func TestBuildMapView_Selection(t *testing.T) {
	ds := newTestDataset(t)

	view, err := viewer.BuildMapView(ds, "Anibong Shoreline")
	require.NoError(t, err)

	// Center is the centroid of Anibong's three ring points.
	assert.InDelta(t, 11.2, view.Center.Lat, 1e-9)
	assert.InDelta(t, 125.1, view.Center.Lon, 1e-9)
	assert.Equal(t, float64(viewer.SelectedZoom), view.Zoom)

	require.Len(t, view.Polygons, 2)
	selected := view.Polygons[0]
	other := view.Polygons[1]
	require.Equal(t, "Anibong Shoreline", selected.Name)

	assert.True(t, selected.Selected)
	assert.Equal(t, 4, selected.Weight)
	assert.False(t, other.Selected)
	assert.Equal(t, 1, other.Weight)
}

func TestBuildMapView_Colors(t *testing.T) {
	ds := newTestDataset(t)

	view, err := viewer.BuildMapView(ds, "")
	require.NoError(t, err)

	byName := map[string]viewer.MapPolygon{}
	for _, p := range view.Polygons {
		byName[p.Name] = p
	}

	// (1+1+2)/3 = 1.33 → orange; (5+4+5)/3 = 4.67 → blue.
	anibong := byName["Anibong Shoreline"]
	assert.InDelta(t, 1.33, anibong.Index, 1e-9)
	assert.Equal(t, "orange", anibong.FillColor)
	assert.Equal(t, "orange", anibong.Severity)

	kanhuraw := byName["Kanhuraw Hill"]
	assert.InDelta(t, 4.67, kanhuraw.Index, 1e-9)
	assert.Equal(t, "blue", kanhuraw.FillColor)
}

func TestBuildMapView_PolygonOrder(t *testing.T) {
	ds := newTestDataset(t)

	view, err := viewer.BuildMapView(ds, "")
	require.NoError(t, err)

	// Polygons follow landmark load order.
	require.Len(t, view.Polygons, 2)
	assert.Equal(t, "Anibong Shoreline", view.Polygons[0].Name)
	assert.Equal(t, "Kanhuraw Hill", view.Polygons[1].Name)
}

func TestBuildMapView_UnknownSelection(t *testing.T) {
	ds := newTestDataset(t)

	_, err := viewer.BuildMapView(ds, "Atlantis")

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
