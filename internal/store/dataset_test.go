package store

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/coastal-vuln-viewer/internal/domain"
)

const datasetKML = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark>
      <name>Anibong Shoreline</name>
      <Polygon><outerBoundaryIs><LinearRing><coordinates>
        125.0,11.2,0 125.1,11.3,0 125.2,11.1,0 125.0,11.2,0
      </coordinates></LinearRing></outerBoundaryIs></Polygon>
    </Placemark>
    <Placemark>
      <name>Kanhuraw Hill</name>
      <Polygon><outerBoundaryIs><LinearRing><coordinates>
        125.000,11.244,0 125.002,11.245,0 125.003,11.243,0 125.000,11.244,0
      </coordinates></LinearRing></outerBoundaryIs></Polygon>
    </Placemark>
  </Document>
</kml>`

func loadTestDataset(t *testing.T) *Dataset {
	t.Helper()
	ds, err := Load(
		writeFile(t, "landmarks.json", validLandmarksJSON),
		writeFile(t, "boundaries.kml", datasetKML),
	)
	require.NoError(t, err)
	return ds
}

func TestLoad(t *testing.T) {
	t.Run("complete dataset", func(t *testing.T) {
		frozen := time.Date(2026, 8, 12, 9, 0, 0, 0, time.UTC)
		domain.SetClock(clockwork.NewFakeClockAt(frozen))
		defer domain.SetClock(nil)

		ds := loadTestDataset(t)

		assert.Equal(t, []string{"Anibong Shoreline", "Kanhuraw Hill"}, ds.Names())
		assert.Equal(t, frozen, ds.LoadedAt())
		require.NoError(t, ds.CheckReadiness(context.Background()))
	})

	t.Run("landmark without boundary fails", func(t *testing.T) {
		const oneBoundary = `<kml xmlns="http://www.opengis.net/kml/2.2"><Document>
			<Placemark>
				<name>Anibong Shoreline</name>
				<Polygon><outerBoundaryIs><LinearRing><coordinates>125.0,11.2,0</coordinates></LinearRing></outerBoundaryIs></Polygon>
			</Placemark>
		</Document></kml>`

		_, err := Load(
			writeFile(t, "landmarks.json", validLandmarksJSON),
			writeFile(t, "boundaries.kml", oneBoundary),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLoad)
		assert.Contains(t, err.Error(), "Kanhuraw Hill")
	})

	t.Run("landmark load failure propagates", func(t *testing.T) {
		_, err := Load(
			writeFile(t, "landmarks.json", "{broken"),
			writeFile(t, "boundaries.kml", datasetKML),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLoad)
	})
}

func TestDatasetLookups(t *testing.T) {
	ds := loadTestDataset(t)

	t.Run("landmark by name", func(t *testing.T) {
		l, err := ds.Landmark("Kanhuraw Hill")

		require.NoError(t, err)
		assert.Equal(t, 5.0, l.Geomorphology.Score)
	})

	t.Run("boundary by name", func(t *testing.T) {
		b, err := ds.Boundary("Anibong Shoreline")

		require.NoError(t, err)
		require.Len(t, b.Ring, 4)
		assert.Equal(t, domain.LatLng{Lat: 11.2, Lon: 125.0}, b.Ring[0])
	})

	t.Run("unknown landmark", func(t *testing.T) {
		_, err := ds.Landmark("Atlantis")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown boundary", func(t *testing.T) {
		_, err := ds.Boundary("Atlantis")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("has", func(t *testing.T) {
		assert.True(t, ds.Has("Anibong Shoreline"))
		assert.False(t, ds.Has("Atlantis"))
	})
}
