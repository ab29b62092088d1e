// Command genmock writes a small synthetic landmark/boundary dataset pair
// for demos and tests. The output is round-tripped through the real store
// loader so the fixtures always satisfy the viewer's load-time invariants.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -landmarks-out data/mock/landmarks.json \
//	  -boundaries-out data/mock/boundaries.kml
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/coastal-vuln-viewer/internal/domain"
	"github.com/couchcryptid/coastal-vuln-viewer/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	landmarksOut := flag.String("landmarks-out", "", "output path for the landmark JSON fixture")
	boundariesOut := flag.String("boundaries-out", "", "output path for the boundary KML fixture")
	flag.Parse()

	if *landmarksOut == "" || *boundariesOut == "" {
		flag.Usage()
		return fmt.Errorf("missing required flags: -landmarks-out, -boundaries-out")
	}

	landmarks := mockLandmarks()
	if err := writeLandmarks(*landmarksOut, landmarks); err != nil {
		return fmt.Errorf("writing landmarks fixture: %w", err)
	}
	log.Printf("wrote landmarks fixture: %s (%d records)", *landmarksOut, len(landmarks))

	if err := writeKML(*boundariesOut, mockBoundaries()); err != nil {
		return fmt.Errorf("writing boundaries fixture: %w", err)
	}
	log.Printf("wrote boundaries fixture: %s", *boundariesOut)

	// Round-trip through the real loader to prove the pair is servable.
	ds, err := store.Load(*landmarksOut, *boundariesOut)
	if err != nil {
		return fmt.Errorf("generated dataset failed to load: %w", err)
	}

	log.Printf("dataset verified: %d landmarks", len(ds.Landmarks()))
	for _, l := range ds.Landmarks() {
		index := domain.ComputeIndex(l)
		log.Printf("  %-28s index=%.2f severity=%s", l.Name, index, domain.Classify(index).Label())
	}
	return nil
}

// mockLandmarks covers each severity bucket, threshold values included, plus
// one record without images for the gallery notice path.
func mockLandmarks() []domain.Landmark {
	return []domain.Landmark{
		{
			Name:                  "Mock Fishing Wharf",
			Geomorphology:         domain.SubAssessment{Score: 1, Description: "Low-lying reclaimed foreshore."},
			NaturalBuffers:        domain.SubAssessment{Score: 1, Description: "No remaining mangrove cover."},
			EngineeringStructures: domain.SubAssessment{Score: 1, Description: "Unprotected timber jetties."},
			Images:                []string{"images/mock/wharf_01.jpg", "images/mock/wharf_02.jpg"},
		},
		{
			Name:                  "Mock Market Esplanade",
			Geomorphology:         domain.SubAssessment{Score: 2, Description: "Gently sloping sandy frontage."},
			NaturalBuffers:        domain.SubAssessment{Score: 2, Description: "Sparse beach vegetation."},
			EngineeringStructures: domain.SubAssessment{Score: 2, Description: "Aging low seawall."},
		},
		{
			Name:                  "Mock Civic Plaza",
			Geomorphology:         domain.SubAssessment{Score: 3, Description: "Moderately elevated plaza grounds."},
			NaturalBuffers:        domain.SubAssessment{Score: 3, Description: "Patchy coastal tree line."},
			EngineeringStructures: domain.SubAssessment{Score: 3, Description: "Partial revetment along frontage."},
			Images:                []string{"images/mock/plaza_01.jpg", "images/mock/plaza_02.jpg", "images/mock/plaza_03.jpg", "images/mock/plaza_04.jpg"},
		},
		{
			Name:                  "Mock Hillside Chapel",
			Geomorphology:         domain.SubAssessment{Score: 5, Description: "Elevated headland site."},
			NaturalBuffers:        domain.SubAssessment{Score: 4, Description: "Dense tree cover on seaward slope."},
			EngineeringStructures: domain.SubAssessment{Score: 5, Description: "Reinforced retaining works."},
		},
	}
}

type mockBoundary struct {
	name   string
	center domain.LatLng
}

// mockBoundaries places a small square ring around each landmark's center.
func mockBoundaries() []mockBoundary {
	return []mockBoundary{
		{name: "Mock Fishing Wharf", center: domain.LatLng{Lat: 11.245, Lon: 125.005}},
		{name: "Mock Market Esplanade", center: domain.LatLng{Lat: 11.238, Lon: 125.010}},
		{name: "Mock Civic Plaza", center: domain.LatLng{Lat: 11.230, Lon: 125.000}},
		{name: "Mock Hillside Chapel", center: domain.LatLng{Lat: 11.222, Lon: 124.996}},
	}
}

func writeLandmarks(path string, landmarks []domain.Landmark) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(map[string]any{"landmarks": landmarks}, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o600)
}

func writeKML(path string, boundaries []mockBoundary) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	const d = 0.002 // ~200m half-width square
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<kml xmlns="http://www.opengis.net/kml/2.2">` + "\n  <Document>\n")
	for _, mb := range boundaries {
		// KML coordinate order is lon,lat,alt; the ring closes on its
		// first point.
		corners := []domain.LatLng{
			{Lat: mb.center.Lat - d, Lon: mb.center.Lon - d},
			{Lat: mb.center.Lat - d, Lon: mb.center.Lon + d},
			{Lat: mb.center.Lat + d, Lon: mb.center.Lon + d},
			{Lat: mb.center.Lat + d, Lon: mb.center.Lon - d},
			{Lat: mb.center.Lat - d, Lon: mb.center.Lon - d},
		}
		coords := make([]string, len(corners))
		for i, c := range corners {
			coords[i] = fmt.Sprintf("%.6f,%.6f,0", c.Lon, c.Lat)
		}
		fmt.Fprintf(&b, "    <Placemark>\n      <name>%s</name>\n      <Polygon><outerBoundaryIs><LinearRing><coordinates>\n        %s\n      </coordinates></LinearRing></outerBoundaryIs></Polygon>\n    </Placemark>\n",
			mb.name, strings.Join(coords, " "))
	}
	b.WriteString("  </Document>\n</kml>\n")
	return os.WriteFile(path, []byte(b.String()), 0o600)
}
