package viewer

// LegendEntry is one line of the CVI interpretation key.
type LegendEntry struct {
	Color       string `json:"color"`
	Score       int    `json:"score"`
	Meaning     string `json:"meaning"`
	Description string `json:"description"`
}

// Legend returns the five-bucket interpretation key, lowest vulnerability
// first, exactly as the survey publishes it. The scale reads inverted against
// typical hazard maps (blue = safest); that is deliberate and preserved.
func Legend() []LegendEntry {
	return []LegendEntry{
		{Color: "blue", Score: 1, Meaning: "Lowest vulnerability", Description: "elevated or well-protected areas"},
		{Color: "green", Score: 2, Meaning: "Low vulnerability", Description: "minor exposure to hazards"},
		{Color: "yellow", Score: 3, Meaning: "Moderate vulnerability", Description: "noticeable risk"},
		{Color: "orange", Score: 4, Meaning: "High vulnerability", Description: "significant exposure"},
		{Color: "red", Score: 5, Meaning: "Highest vulnerability", Description: "very exposed and at risk"},
	}
}
