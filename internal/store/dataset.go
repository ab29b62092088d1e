package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/couchcryptid/coastal-vuln-viewer/internal/domain"
)

// Dataset is the loaded, cross-checked landmark and boundary data. Read-only
// after Load, so it is safe to share across request handlers without locking.
type Dataset struct {
	landmarks  []domain.Landmark
	byName     map[string]int
	boundaries map[string]domain.Boundary
	loadedAt   time.Time
}

// Load reads both data files and enforces the cross-file invariant: every
// landmark name must have a matching boundary. Any violation fails the whole
// load; there is no partial-dataset mode.
func Load(landmarksPath, boundariesPath string) (*Dataset, error) {
	landmarks, err := LoadLandmarks(landmarksPath)
	if err != nil {
		return nil, err
	}
	boundaries, err := LoadBoundaries(boundariesPath)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int, len(landmarks))
	var unmatched []string
	for i, l := range landmarks {
		byName[l.Name] = i
		if _, ok := boundaries[l.Name]; !ok {
			unmatched = append(unmatched, l.Name)
		}
	}
	if len(unmatched) > 0 {
		sort.Strings(unmatched)
		return nil, wrapLoad(fmt.Errorf("landmarks without boundaries: %v", unmatched))
	}

	return &Dataset{
		landmarks:  landmarks,
		byName:     byName,
		boundaries: boundaries,
		loadedAt:   domain.Now(),
	}, nil
}

// Landmarks returns all landmarks in file order. Callers must not mutate.
func (d *Dataset) Landmarks() []domain.Landmark {
	return d.landmarks
}

// Names returns the landmark names in file order, for the selection control.
func (d *Dataset) Names() []string {
	names := make([]string, len(d.landmarks))
	for i, l := range d.landmarks {
		names[i] = l.Name
	}
	return names
}

// Has reports whether a landmark with the given name was loaded.
func (d *Dataset) Has(name string) bool {
	_, ok := d.byName[name]
	return ok
}

// Landmark returns the named landmark, or ErrNotFound for a name the
// invariant should have guaranteed.
func (d *Dataset) Landmark(name string) (domain.Landmark, error) {
	i, ok := d.byName[name]
	if !ok {
		return domain.Landmark{}, fmt.Errorf("landmark %q: %w", name, ErrNotFound)
	}
	return d.landmarks[i], nil
}

// Boundary returns the named landmark's boundary, or ErrNotFound.
func (d *Dataset) Boundary(name string) (domain.Boundary, error) {
	b, ok := d.boundaries[name]
	if !ok {
		return domain.Boundary{}, fmt.Errorf("boundary %q: %w", name, ErrNotFound)
	}
	return b, nil
}

// LoadedAt returns when the dataset was loaded.
func (d *Dataset) LoadedAt() time.Time {
	return d.loadedAt
}

// CheckReadiness reports whether the dataset is loaded and non-empty. It
// backs the /readyz endpoint.
func (d *Dataset) CheckReadiness(_ context.Context) error {
	if d == nil || len(d.landmarks) == 0 {
		return errors.New("dataset not loaded")
	}
	return nil
}
