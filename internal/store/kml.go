package store

import (
	"encoding/xml"
	"fmt"
	"os"

	"github.com/couchcryptid/coastal-vuln-viewer/internal/domain"
)

// KML decode shapes. Only the placemark name and polygon outer ring are
// needed; styles and extended data are ignored. encoding/xml matches local
// element names regardless of the kml namespace prefix.

type kmlFile struct {
	XMLName  xml.Name  `xml:"kml"`
	Document kmlFolder `xml:"Document"`
}

type kmlFolder struct {
	Folders    []kmlFolder    `xml:"Folder"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlPlacemark struct {
	Name    string `xml:"name"`
	Polygon struct {
		Coordinates string `xml:"outerBoundaryIs>LinearRing>coordinates"`
	} `xml:"Polygon"`
}

// LoadBoundaries reads a KML file and returns one Boundary per placemark,
// keyed by placemark name. Placemarks may sit directly in the Document or
// inside nested Folders, matching common mapping-tool exports.
func LoadBoundaries(path string) (map[string]domain.Boundary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapLoad(fmt.Errorf("read boundaries: %w", err))
	}

	var file kmlFile
	if err := xml.Unmarshal(data, &file); err != nil {
		return nil, wrapLoad(fmt.Errorf("parse boundaries %s: %w", path, err))
	}

	boundaries := make(map[string]domain.Boundary)
	if err := collectPlacemarks(file.Document, boundaries); err != nil {
		return nil, wrapLoad(fmt.Errorf("boundaries %s: %w", path, err))
	}
	if len(boundaries) == 0 {
		return nil, wrapLoad(fmt.Errorf("boundaries %s: no placemarks", path))
	}
	return boundaries, nil
}

func collectPlacemarks(folder kmlFolder, out map[string]domain.Boundary) error {
	for _, pm := range folder.Placemarks {
		if pm.Name == "" {
			return fmt.Errorf("placemark without a name")
		}
		if _, ok := out[pm.Name]; ok {
			return fmt.Errorf("duplicate placemark %q", pm.Name)
		}
		if pm.Polygon.Coordinates == "" {
			return fmt.Errorf("placemark %q: missing coordinate ring", pm.Name)
		}
		ring, err := domain.ParseCoordinates(pm.Polygon.Coordinates)
		if err != nil {
			return fmt.Errorf("placemark %q: %w", pm.Name, err)
		}
		out[pm.Name] = domain.Boundary{Name: pm.Name, Ring: ring}
	}
	for _, sub := range folder.Folders {
		if err := collectPlacemarks(sub, out); err != nil {
			return err
		}
	}
	return nil
}
