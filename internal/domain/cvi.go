package domain

import (
	"math"
	"strings"
)

// Severity is a vulnerability bucket. Its string form is the map color word
// used by the survey's published key; note the inverted scale (red = highest
// vulnerability at the LOW end of the index, blue = lowest at the high end).
type Severity string

const (
	SeverityRed    Severity = "red"
	SeverityOrange Severity = "orange"
	SeverityYellow Severity = "yellow"
	SeverityGreen  Severity = "green"
	SeverityBlue   Severity = "blue"
)

func (s Severity) String() string { return string(s) }

// Label returns the capitalized display form, e.g. "Orange".
func (s Severity) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// ComputeIndex returns the landmark's Coastal Vulnerability Index: the mean
// of the three sub-assessment scores rounded to two decimal places. No error
// path; the load layer guarantees all three scores are present.
func ComputeIndex(l Landmark) float64 {
	mean := (l.Geomorphology.Score + l.NaturalBuffers.Score + l.EngineeringStructures.Score) / 3
	return math.Round(mean*100) / 100
}

// Classify maps an index to its severity bucket. Thresholds have closed
// upper bounds, so a value exactly on a threshold falls in the more severe
// bucket (1.0 is red, 2.0 is orange, and so on).
func Classify(index float64) Severity {
	switch {
	case index <= 1.0:
		return SeverityRed
	case index <= 2.0:
		return SeverityOrange
	case index <= 3.0:
		return SeverityYellow
	case index <= 4.0:
		return SeverityGreen
	default:
		return SeverityBlue
	}
}
