// Package domain models the Tacloban City coastal vulnerability assessment
// dataset.
//
// # Data Sources
//
// Landmark assessments come from a field survey of coastal landmarks, stored
// as a structured document with one record per landmark. Each record carries
// three scored sub-assessments (geomorphology, natural buffers, engineering
// structures) with free-text descriptions, plus an optional ordered list of
// street-view photo references. Landmark boundaries come from a KML file
// exported from the survey's mapping tool; placemark names in the KML must
// match landmark names exactly.
//
// # Coordinate Conventions
//
// KML coordinate rings are whitespace-separated "lon,lat[,alt]" triples.
// Internally every point is a (lat, lon) pair — the order expected by web
// mapping libraries — and altitude is discarded. The swap happens in exactly
// one place, [ParseCoordinates]; nothing else reorders coordinates.
//
// # Coastal Vulnerability Index (CVI)
//
// Each sub-assessment is scored 1-5. The CVI is the arithmetic mean of the
// three scores, rounded to two decimal places, and classified into five
// buckets with closed upper bounds:
//
//	index ≤ 1.0  red     (highest vulnerability)
//	index ≤ 2.0  orange
//	index ≤ 3.0  yellow
//	index ≤ 4.0  green
//	otherwise    blue    (lowest vulnerability)
//
// A value on a threshold belongs to the more severe bucket. Note the scale is
// inverted relative to the usual hazard-map framing: here blue marks the
// safest areas and a LOW index means HIGH vulnerability. This mirrors the
// survey's published color key and is preserved as-is.
package domain
