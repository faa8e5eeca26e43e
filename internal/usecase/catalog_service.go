package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/consumesafe/backend/internal/domain"
)

// Cache keys for derived catalog aggregates.
const (
	cacheKeyCategories = "catalog:categories"
	cacheKeyStats      = "catalog:stats"
)

// CatalogServiceConfig holds configuration for the catalog service.
type CatalogServiceConfig struct {
	CacheTTL time.Duration
}

// CatalogService answers catalog queries: lookups, filters, and aggregates.
// The catalog snapshot is immutable, so derived aggregates are cached.
type CatalogService struct {
	catalog  []domain.ProductRecord
	ranker   *RelevanceRanker
	cache    domain.CacheRepository
	cacheTTL time.Duration
}

// NewCatalogService creates a catalog service with dependencies.
func NewCatalogService(
	catalog []domain.ProductRecord,
	cache domain.CacheRepository,
	config CatalogServiceConfig,
) *CatalogService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = time.Hour
	}

	return &CatalogService{
		catalog:  catalog,
		ranker:   NewRelevanceRanker(catalog),
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Loaded reports whether the catalog snapshot has any records. Handlers
// surface an empty catalog as service-unavailable, not as empty results.
func (s *CatalogService) Loaded() bool {
	return len(s.catalog) > 0
}

// CheckProduct returns the best-ranked record for a product name, or
// ErrProductNotFound when the product is not on the list.
func (s *CatalogService) CheckProduct(name string) (domain.ProductRecord, error) {
	results, err := s.ranker.Search(name, 1)
	if err != nil {
		return domain.ProductRecord{}, err
	}
	if len(results) == 0 {
		return domain.ProductRecord{}, domain.ErrProductNotFound
	}
	return results[0].Record, nil
}

// Search ranks catalog records against a query, highest relevance first.
func (s *CatalogService) Search(query string, limit int) ([]domain.ScoredCandidate, error) {
	return s.ranker.Search(query, limit)
}

// List returns the first limit records in catalog order.
func (s *CatalogService) List(limit int) []domain.ProductRecord {
	if limit <= 0 || limit > len(s.catalog) {
		limit = len(s.catalog)
	}
	out := make([]domain.ProductRecord, limit)
	copy(out, s.catalog[:limit])
	return out
}

// ByCategory returns all records whose category equals cat,
// case-insensitively.
func (s *CatalogService) ByCategory(cat string) []domain.ProductRecord {
	catLower := strings.ToLower(cat)
	var out []domain.ProductRecord
	for _, rec := range s.catalog {
		if strings.ToLower(rec.Category) == catLower {
			out = append(out, rec)
		}
	}
	return out
}

// ByIntensity returns all records with the given intensity label. The label
// must be one of the closed set {High, Medium, Low}.
func (s *CatalogService) ByIntensity(intensity string) ([]domain.ProductRecord, error) {
	if !domain.ValidIntensity(intensity) {
		return nil, fmt.Errorf("%w: intensity must be High, Medium or Low", domain.ErrInvalidRequest)
	}
	var out []domain.ProductRecord
	for _, rec := range s.catalog {
		if rec.Intensity == intensity {
			out = append(out, rec)
		}
	}
	return out, nil
}

// Categories returns the sorted unique non-empty categories.
func (s *CatalogService) Categories(ctx context.Context) []string {
	if cached, err := s.cache.Get(ctx, cacheKeyCategories); err == nil {
		if categories, ok := cached.([]string); ok {
			return categories
		}
	}

	seen := make(map[string]bool)
	for _, rec := range s.catalog {
		cat := strings.TrimSpace(rec.Category)
		if cat != "" {
			seen[cat] = true
		}
	}
	categories := make([]string, 0, len(seen))
	for cat := range seen {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	_ = s.cache.Set(ctx, cacheKeyCategories, categories, s.cacheTTL)
	return categories
}

// Stats returns counts of records by category and intensity.
func (s *CatalogService) Stats(ctx context.Context) domain.CatalogStats {
	if cached, err := s.cache.Get(ctx, cacheKeyStats); err == nil {
		if stats, ok := cached.(domain.CatalogStats); ok {
			return stats
		}
	}

	stats := domain.CatalogStats{
		TotalProducts: len(s.catalog),
		ByIntensity:   make(map[string]int),
		ByCategory:    make(map[string]int),
	}
	for _, rec := range s.catalog {
		intensity := rec.Intensity
		if intensity == "" {
			intensity = "Unknown"
		}
		category := rec.Category
		if category == "" {
			category = "Unknown"
		}
		stats.ByIntensity[intensity]++
		stats.ByCategory[category]++
	}
	stats.Categories = len(s.Categories(ctx))

	_ = s.cache.Set(ctx, cacheKeyStats, stats, s.cacheTTL)
	return stats
}
