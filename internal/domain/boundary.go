package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// LatLng is a WGS-84 coordinate pair in mapping order (latitude first).
type LatLng struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Ring is an ordered closed polygon of coordinates.
type Ring []LatLng

// Boundary is a landmark's mapped extent. The name must match a Landmark
// name; the load layer enforces that. Immutable after load.
type Boundary struct {
	Name string `json:"name"`
	Ring Ring   `json:"ring"`
}

// ParseCoordinates parses a KML coordinate string: whitespace-separated
// "lon,lat[,alt]" triples. Altitude is discarded and the (lon, lat) source
// order is swapped to the internal (lat, lon) convention. This is the only
// place the swap happens.
func ParseCoordinates(text string) (Ring, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty coordinate ring")
	}

	ring := make(Ring, 0, len(tokens))
	for _, tok := range tokens {
		parts := strings.Split(tok, ",")
		if len(parts) != 2 && len(parts) != 3 {
			return nil, fmt.Errorf("coordinate %q: want lon,lat[,alt]", tok)
		}
		lon, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: bad longitude: %w", tok, err)
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: bad latitude: %w", tok, err)
		}
		ring = append(ring, LatLng{Lat: lat, Lon: lon})
	}
	return ring, nil
}

// Centroid returns the arithmetic mean of the ring's points. The zero LatLng
// is returned for an empty ring; loaded rings are never empty.
func (r Ring) Centroid() LatLng {
	if len(r) == 0 {
		return LatLng{}
	}
	var latSum, lonSum float64
	for _, p := range r {
		latSum += p.Lat
		lonSum += p.Lon
	}
	n := float64(len(r))
	return LatLng{Lat: latSum / n, Lon: lonSum / n}
}
