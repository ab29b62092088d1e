package viewer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/coastal-vuln-viewer/internal/store"
)

// Fixture scores: Anibong (1,1,2) → index 1.33 orange; Kanhuraw (5,4,5) →
// index 4.67 blue. Anibong carries four images, Kanhuraw none.
const testLandmarksJSON = `{
  "landmarks": [
    {
      "name": "Anibong Shoreline",
      "geomorphology": {"score": 1, "description": "Low-lying reclaimed shoreline."},
      "natural_buffers": {"score": 1, "description": "Mangroves removed."},
      "engineering_structures": {"score": 2, "description": "Discontinuous riprap."},
      "images": ["images/a1.jpg", "images/a2.jpg", "images/a3.jpg", "images/a4.jpg"]
    },
    {
      "name": "Kanhuraw Hill",
      "geomorphology": {"score": 5, "description": "Hilltop civic center."},
      "natural_buffers": {"score": 4, "description": "Vegetated slopes."},
      "engineering_structures": {"score": 5, "description": "No defense works needed."}
    }
  ]
}`

// Anibong's ring centroid is (11.2, 125.1), distinct from the default center.
const testBoundariesKML = `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark>
      <name>Anibong Shoreline</name>
      <Polygon><outerBoundaryIs><LinearRing><coordinates>
        125.0,11.1,0 125.1,11.3,0 125.2,11.2,0
      </coordinates></LinearRing></outerBoundaryIs></Polygon>
    </Placemark>
    <Placemark>
      <name>Kanhuraw Hill</name>
      <Polygon><outerBoundaryIs><LinearRing><coordinates>
        125.000,11.244,0 125.002,11.245,0 125.003,11.243,0
      </coordinates></LinearRing></outerBoundaryIs></Polygon>
    </Placemark>
  </Document>
</kml>`

func newTestDataset(t *testing.T) *store.Dataset {
	t.Helper()
	dir := t.TempDir()
	landmarksPath := filepath.Join(dir, "landmarks.json")
	boundariesPath := filepath.Join(dir, "boundaries.kml")
	require.NoError(t, os.WriteFile(landmarksPath, []byte(testLandmarksJSON), 0o600))
	require.NoError(t, os.WriteFile(boundariesPath, []byte(testBoundariesKML), 0o600))

	ds, err := store.Load(landmarksPath, boundariesPath)
	require.NoError(t, err)
	return ds
}
