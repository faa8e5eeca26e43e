package domain

// Boycott intensity labels. The catalog only ever carries these three values.
const (
	IntensityHigh   = "High"
	IntensityMedium = "Medium"
	IntensityLow    = "Low"
)

// ProductRecord is one flagged product from the catalog CSV.
// All fields are plain strings; absent CSV columns are loaded as "" so
// downstream lookups never need nil checks.
type ProductRecord struct {
	ID               string `json:"id"`
	FlaggedName      string `json:"flaggedName"`
	Brand            string `json:"brand"`
	Category         string `json:"category"`
	Reason           string `json:"reason"`
	Intensity        string `json:"intensity"`
	AlternativeName  string `json:"alternativeName"`
	AlternativeBrand string `json:"alternativeBrand"`
}

// ScoredCandidate pairs a catalog record with a relevance score.
// Produced by search and recommendation ranking, never persisted.
type ScoredCandidate struct {
	Record ProductRecord `json:"record"`
	Score  float64       `json:"score"`
}

// CatalogStats summarizes the loaded catalog.
type CatalogStats struct {
	TotalProducts int            `json:"totalProducts"`
	Categories    int            `json:"categories"`
	ByIntensity   map[string]int `json:"byIntensity"`
	ByCategory    map[string]int `json:"byCategory"`
}

// ValidIntensity reports whether s is one of the closed intensity set.
func ValidIntensity(s string) bool {
	return s == IntensityHigh || s == IntensityMedium || s == IntensityLow
}
