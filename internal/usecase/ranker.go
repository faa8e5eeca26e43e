package usecase

import (
	"sort"
	"strings"

	"github.com/consumesafe/backend/internal/domain"
)

// Relevance scores by match specificity. An exact name match always
// outranks an exact brand match, which outranks partial matches.
const (
	scoreExactName    = 3.0
	scoreExactBrand   = 2.0
	scorePartialName  = 1.0
	scorePartialBrand = 0.5
)

// RelevanceRanker scores and orders catalog records against a search query.
// Used by both the search endpoint and the recommendation engine's callers.
type RelevanceRanker struct {
	catalog []domain.ProductRecord
}

// NewRelevanceRanker creates a ranker over the immutable catalog snapshot.
func NewRelevanceRanker(catalog []domain.ProductRecord) *RelevanceRanker {
	return &RelevanceRanker{catalog: catalog}
}

// Search returns up to limit records matching the query, highest relevance
// first. Records that match on no tier are excluded entirely. Ties keep
// catalog order: the sort must stay stable so repeated searches return
// identical orderings.
func (r *RelevanceRanker) Search(query string, limit int) ([]domain.ScoredCandidate, error) {
	if query == "" {
		return nil, domain.ErrInvalidRequest
	}
	if len(r.catalog) == 0 {
		return nil, domain.ErrCatalogUnavailable
	}

	queryLower := strings.ToLower(query)

	var results []domain.ScoredCandidate
	for _, rec := range r.catalog {
		score := relevanceScore(queryLower, rec)
		if score > 0 {
			results = append(results, domain.ScoredCandidate{Record: rec, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// relevanceScore scores one record against a lowercased query; highest
// specificity wins, 0 means no match.
func relevanceScore(queryLower string, rec domain.ProductRecord) float64 {
	nameLower := strings.ToLower(rec.FlaggedName)
	brandLower := strings.ToLower(rec.Brand)

	switch {
	case queryLower == nameLower:
		return scoreExactName
	case queryLower == brandLower:
		return scoreExactBrand
	case nameLower != "" && strings.Contains(nameLower, queryLower):
		return scorePartialName
	case brandLower != "" && strings.Contains(brandLower, queryLower):
		return scorePartialBrand
	default:
		return 0
	}
}
