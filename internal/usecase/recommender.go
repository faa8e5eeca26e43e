package usecase

import (
	"sort"
	"strings"

	"github.com/consumesafe/backend/internal/domain"
)

// Recommendation score components. A record is only scored at all when its
// category matches the history, so the category term is always present and
// every returned score is one of 0.8 or 1.0 (0.1 and 0.3 exist in the
// formula but are unreachable through Recommend).
const (
	categoryMatchWeight = 0.7
	alternativeWeight   = 0.2
	baselineWeight      = 0.1
)

// RecommendationEngine derives a ranked list of related records from a
// user's viewing/search history, reusing category signals.
type RecommendationEngine struct {
	catalog []domain.ProductRecord
}

// NewRecommendationEngine creates an engine over the immutable catalog
// snapshot.
func NewRecommendationEngine(catalog []domain.ProductRecord) *RecommendationEngine {
	return &RecommendationEngine{catalog: catalog}
}

// Recommend returns up to limit records from the categories the history
// touched, highest score first, stable on catalog order for ties. An empty
// history yields an empty result, not an error.
func (e *RecommendationEngine) Recommend(history []string, limit int) []domain.ScoredCandidate {
	categories := e.touchedCategories(history)
	if len(categories) == 0 {
		return []domain.ScoredCandidate{}
	}

	var results []domain.ScoredCandidate
	for _, rec := range e.catalog {
		if !categories[rec.Category] {
			continue
		}
		score := categoryMatchWeight + baselineWeight
		if rec.AlternativeName != "" {
			score += alternativeWeight
		}
		results = append(results, domain.ScoredCandidate{Record: rec, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// touchedCategories collects the categories of every catalog record whose
// name contains one of the history strings, case-insensitively.
func (e *RecommendationEngine) touchedCategories(history []string) map[string]bool {
	categories := make(map[string]bool)
	for _, viewed := range history {
		viewedLower := strings.ToLower(viewed)
		if viewedLower == "" {
			continue
		}
		for _, rec := range e.catalog {
			if strings.Contains(strings.ToLower(rec.FlaggedName), viewedLower) {
				categories[rec.Category] = true
			}
		}
	}
	return categories
}
