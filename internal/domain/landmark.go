package domain

import (
	"errors"
	"fmt"
)

// SubAssessment is one scored dimension of a landmark's vulnerability survey.
type SubAssessment struct {
	Score       float64 `json:"score" yaml:"score"`
	Description string  `json:"description" yaml:"description"`
}

// Landmark is a surveyed coastal landmark. Immutable after load.
type Landmark struct {
	Name                  string        `json:"name" yaml:"name"`
	Geomorphology         SubAssessment `json:"geomorphology" yaml:"geomorphology"`
	NaturalBuffers        SubAssessment `json:"natural_buffers" yaml:"natural_buffers"`
	EngineeringStructures SubAssessment `json:"engineering_structures" yaml:"engineering_structures"`
	Images                []string      `json:"images,omitempty" yaml:"images,omitempty"`
}

// Dimension names in survey order. Display labels for the detail panel.
const (
	DimensionGeomorphology         = "Geomorphology"
	DimensionNaturalBuffers        = "Natural Buffers"
	DimensionEngineeringStructures = "Engineering Structures"
)

// Validate checks the invariants the rest of the system assumes: a non-empty
// name and three scored sub-assessments.
func (l Landmark) Validate() error {
	if l.Name == "" {
		return errors.New("landmark has no name")
	}
	for _, d := range []struct {
		name string
		sub  SubAssessment
	}{
		{DimensionGeomorphology, l.Geomorphology},
		{DimensionNaturalBuffers, l.NaturalBuffers},
		{DimensionEngineeringStructures, l.EngineeringStructures},
	} {
		if d.sub.Score == 0 && d.sub.Description == "" {
			return fmt.Errorf("landmark %q: missing %s sub-assessment", l.Name, d.name)
		}
	}
	return nil
}
