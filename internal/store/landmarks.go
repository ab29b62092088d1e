// Package store loads the two static data files — landmark assessments and
// KML boundaries — into an immutable in-memory Dataset. All malformed input
// is rejected here, at the single load seam; the rest of the system works
// with validated typed records and no error paths beyond contract lookups.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/coastal-vuln-viewer/internal/domain"
)

// ErrLoad tags every startup load failure: missing file, malformed document,
// missing required field, or a landmark/boundary name mismatch. Fatal; the
// service does not start without a complete dataset.
var ErrLoad = errors.New("dataset load failed")

// ErrNotFound tags lookups of names the load-time invariant guarantees to
// exist. Hitting it means a programming error, not bad user input.
var ErrNotFound = errors.New("not found")

func wrapLoad(err error) error {
	return fmt.Errorf("%w: %w", ErrLoad, err)
}

// landmarkRecord is the decode-side shape. Sub-assessments are pointers so a
// missing field is distinguishable from a present-but-zero one.
type landmarkRecord struct {
	Name                  string                `json:"name" yaml:"name"`
	Geomorphology         *domain.SubAssessment `json:"geomorphology" yaml:"geomorphology"`
	NaturalBuffers        *domain.SubAssessment `json:"natural_buffers" yaml:"natural_buffers"`
	EngineeringStructures *domain.SubAssessment `json:"engineering_structures" yaml:"engineering_structures"`
	Images                []string              `json:"images" yaml:"images"`
}

type landmarkFile struct {
	Landmarks []landmarkRecord `json:"landmarks" yaml:"landmarks"`
}

// LoadLandmarks reads the landmark assessment file, JSON by default or YAML
// for .yaml/.yml paths, and returns the records in file order.
func LoadLandmarks(path string) ([]domain.Landmark, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrapLoad(fmt.Errorf("read landmarks: %w", err))
	}

	var file landmarkFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	default:
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, wrapLoad(fmt.Errorf("parse landmarks %s: %w", path, err))
	}

	if len(file.Landmarks) == 0 {
		return nil, wrapLoad(fmt.Errorf("landmarks %s: no landmark records", path))
	}

	landmarks := make([]domain.Landmark, 0, len(file.Landmarks))
	seen := make(map[string]bool, len(file.Landmarks))
	for i, rec := range file.Landmarks {
		l, err := rec.toDomain(i)
		if err != nil {
			return nil, wrapLoad(err)
		}
		if seen[l.Name] {
			return nil, wrapLoad(fmt.Errorf("duplicate landmark name %q", l.Name))
		}
		seen[l.Name] = true
		landmarks = append(landmarks, l)
	}
	return landmarks, nil
}

func (r landmarkRecord) toDomain(i int) (domain.Landmark, error) {
	if r.Name == "" {
		return domain.Landmark{}, fmt.Errorf("landmark record %d: missing name", i)
	}
	for _, d := range []struct {
		field string
		sub   *domain.SubAssessment
	}{
		{"geomorphology", r.Geomorphology},
		{"natural_buffers", r.NaturalBuffers},
		{"engineering_structures", r.EngineeringStructures},
	} {
		if d.sub == nil {
			return domain.Landmark{}, fmt.Errorf("landmark %q: missing %s", r.Name, d.field)
		}
	}
	l := domain.Landmark{
		Name:                  r.Name,
		Geomorphology:         *r.Geomorphology,
		NaturalBuffers:        *r.NaturalBuffers,
		EngineeringStructures: *r.EngineeringStructures,
		Images:                r.Images,
	}
	// A present-but-zero sub-assessment is as unusable as an absent one; the
	// domain invariant is the final word on what a loadable record is.
	if err := l.Validate(); err != nil {
		return domain.Landmark{}, err
	}
	return l, nil
}
