package viewer

import (
	"time"

	"github.com/couchcryptid/coastal-vuln-viewer/internal/domain"
	"github.com/couchcryptid/coastal-vuln-viewer/internal/store"
)

// GalleryColumns is the fixed column count of the photo grid.
const GalleryColumns = 3

// Panel copy, kept verbatim from the survey's published viewer.
const (
	placeholderTitle = "No landmark selected"
	placeholderBody  = "Select a coastal landmark from the list to view its " +
		"Coastal Vulnerability Index (CVI) and assessment details."
	galleryPlaceholder = "Select a landmark to view related field images."
	noImagesNotice     = "No images available for this landmark."
)

// PanelView is the detail panel for one render cycle. With no selection only
// Placeholder fields are set; with a selection the assessment fields are.
type PanelView struct {
	Selected         bool       `json:"selected"`
	PlaceholderTitle string     `json:"placeholder_title,omitempty"`
	Placeholder      string     `json:"placeholder,omitempty"`
	Name             string     `json:"name,omitempty"`
	Index            float64    `json:"index,omitempty"`
	SeverityLabel    string     `json:"severity_label,omitempty"`
	SeverityColor    string     `json:"severity_color,omitempty"`
	Scores           []ScoreRow `json:"scores,omitempty"`
	Gallery          Gallery    `json:"gallery"`
	GeneratedAt      time.Time  `json:"generated_at"`
}

// ScoreRow is one sub-assessment line of the scoring breakdown.
type ScoreRow struct {
	Dimension   string  `json:"dimension"`
	Score       float64 `json:"score"`
	Description string  `json:"description"`
}

// Gallery is the photo section: either a notice or rows of GalleryColumns
// images in load order.
type Gallery struct {
	Notice string           `json:"notice,omitempty"`
	Rows   [][]GalleryImage `json:"rows,omitempty"`
}

// GalleryImage is one photo cell, captioned with the landmark name.
type GalleryImage struct {
	Source  string `json:"source"`
	Caption string `json:"caption"`
}

// BuildPanelView renders the detail panel for the given selection. An unknown
// selection surfaces store.ErrNotFound.
func BuildPanelView(ds *store.Dataset, selection string) (PanelView, error) {
	if selection == "" {
		return PanelView{
			PlaceholderTitle: placeholderTitle,
			Placeholder:      placeholderBody,
			Gallery:          Gallery{Notice: galleryPlaceholder},
			GeneratedAt:      domain.Now(),
		}, nil
	}

	l, err := ds.Landmark(selection)
	if err != nil {
		return PanelView{}, err
	}

	index := domain.ComputeIndex(l)
	severity := domain.Classify(index)

	return PanelView{
		Selected:      true,
		Name:          l.Name,
		Index:         index,
		SeverityLabel: severity.Label(),
		SeverityColor: severity.String(),
		Scores: []ScoreRow{
			{Dimension: domain.DimensionGeomorphology, Score: l.Geomorphology.Score, Description: l.Geomorphology.Description},
			{Dimension: domain.DimensionNaturalBuffers, Score: l.NaturalBuffers.Score, Description: l.NaturalBuffers.Description},
			{Dimension: domain.DimensionEngineeringStructures, Score: l.EngineeringStructures.Score, Description: l.EngineeringStructures.Description},
		},
		Gallery:     buildGallery(l),
		GeneratedAt: domain.Now(),
	}, nil
}

// buildGallery lays the landmark's images out in rows of GalleryColumns,
// preserving load order. Four images become rows of 3 and 1.
func buildGallery(l domain.Landmark) Gallery {
	if len(l.Images) == 0 {
		return Gallery{Notice: noImagesNotice}
	}

	var rows [][]GalleryImage
	for start := 0; start < len(l.Images); start += GalleryColumns {
		end := min(start+GalleryColumns, len(l.Images))
		row := make([]GalleryImage, 0, end-start)
		for _, src := range l.Images[start:end] {
			row = append(row, GalleryImage{Source: src, Caption: l.Name})
		}
		rows = append(rows, row)
	}
	return Gallery{Rows: rows}
}
