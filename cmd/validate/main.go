// Command validate performs integrity checks on a landmark/boundary dataset
// pair before it is deployed with the viewer: file loads, name matching,
// score ranges, ring geometry, and index/classification spot checks.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -landmarks data/landmarks.json \
//	  -boundaries data/tacloban_coastal_landmarks.kml
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/couchcryptid/coastal-vuln-viewer/internal/domain"
	"github.com/couchcryptid/coastal-vuln-viewer/internal/store"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	landmarksPath := flag.String("landmarks", "", "path to the landmark assessment file (JSON or YAML)")
	boundariesPath := flag.String("boundaries", "", "path to the boundary KML file")
	flag.Parse()

	if *landmarksPath == "" || *boundariesPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*landmarksPath, *boundariesPath); code != 0 {
		os.Exit(code)
	}
}

func run(landmarksPath, boundariesPath string) int {
	fmt.Println("=== Coastal Dataset Integrity Validation ===")
	fmt.Println()

	landmarks, err := store.LoadLandmarks(landmarksPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load landmarks: %v\n", err)
		return 1
	}
	boundaries, err := store.LoadBoundaries(boundariesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load boundaries: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateMatching(landmarks, boundaries),
		validateScores(landmarks),
		validateRings(boundaries),
		validateClassification(landmarks),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-42s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Records: %d landmarks, %d boundaries\n", len(landmarks), len(boundaries))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll validations passed.")
		return 0
	}
	fmt.Println("\nValidation FAILED.")
	return 1
}

// ── Phase 1: Name Matching ──
// Every landmark must have a boundary; orphan boundaries are reported too,
// since they usually mean a typo in a placemark name.

func validateMatching(landmarks []domain.Landmark, boundaries map[string]domain.Boundary) *phase {
	p := &phase{name: "Phase 1: Name Matching"}

	named := make(map[string]bool, len(landmarks))
	for _, l := range landmarks {
		named[l.Name] = true
		if _, ok := boundaries[l.Name]; !ok {
			p.errorf("landmark %q has no boundary placemark", l.Name)
		}
	}
	for name := range boundaries {
		if !named[name] {
			p.errorf("boundary %q has no landmark record", name)
		}
	}
	return p
}

// ── Phase 2: Score Ranges ──
// Sub-assessment scores use the survey's 1-5 scale.

func validateScores(landmarks []domain.Landmark) *phase {
	p := &phase{name: "Phase 2: Score Ranges"}

	for _, l := range landmarks {
		for _, d := range []struct {
			name string
			sub  domain.SubAssessment
		}{
			{"geomorphology", l.Geomorphology},
			{"natural_buffers", l.NaturalBuffers},
			{"engineering_structures", l.EngineeringStructures},
		} {
			if d.sub.Score < 1 || d.sub.Score > 5 {
				p.errorf("landmark %q: %s score %g outside 1-5", l.Name, d.name, d.sub.Score)
			}
			if d.sub.Description == "" {
				p.errorf("landmark %q: %s has no description", l.Name, d.name)
			}
		}
	}
	return p
}

// ── Phase 3: Ring Geometry ──

func validateRings(boundaries map[string]domain.Boundary) *phase {
	p := &phase{name: "Phase 3: Ring Geometry"}

	for name, b := range boundaries {
		if len(b.Ring) < 3 {
			p.errorf("boundary %q: only %d points", name, len(b.Ring))
			continue
		}
		for i, pt := range b.Ring {
			if pt.Lat < -90 || pt.Lat > 90 || pt.Lon < -180 || pt.Lon > 180 {
				p.errorf("boundary %q point %d: out-of-range coordinate (%g, %g)", name, i, pt.Lat, pt.Lon)
			}
		}
		c := b.Ring.Centroid()
		if math.IsNaN(c.Lat) || math.IsNaN(c.Lon) {
			p.errorf("boundary %q: centroid is NaN", name)
		}
	}
	return p
}

// ── Phase 4: Index Classification ──
// Recomputes each index and checks the derived bucket is one of the five
// published colors and consistent with the thresholds.

func validateClassification(landmarks []domain.Landmark) *phase {
	p := &phase{name: "Phase 4: Index Classification"}

	valid := map[domain.Severity]bool{
		domain.SeverityRed:    true,
		domain.SeverityOrange: true,
		domain.SeverityYellow: true,
		domain.SeverityGreen:  true,
		domain.SeverityBlue:   true,
	}

	for _, l := range landmarks {
		index := domain.ComputeIndex(l)
		if index < 1 || index > 5 {
			p.errorf("landmark %q: index %.2f outside 1-5", l.Name, index)
		}
		severity := domain.Classify(index)
		if !valid[severity] {
			p.errorf("landmark %q: unknown severity %q", l.Name, severity)
		}
		if severity.Label() == "" {
			p.errorf("landmark %q: empty severity label", l.Name)
		}
	}
	return p
}
