package usecase

import (
	"strings"
	"unicode/utf8"

	"github.com/consumesafe/backend/internal/domain"
)

// EntityExtractor finds which catalog record, if any, a free-text message
// refers to.
type EntityExtractor struct {
	catalog []domain.ProductRecord
}

// NewEntityExtractor creates an extractor over the immutable catalog snapshot.
func NewEntityExtractor(catalog []domain.ProductRecord) *EntityExtractor {
	return &EntityExtractor{catalog: catalog}
}

// Resolve returns the first catalog record the message refers to, scanning
// records in catalog order. For each record, three tiers are tried in turn:
//
//  1. the lowercased message contains the record's name or brand verbatim
//  2. the normalized message contains the normalized name or brand
//  3. any single word (longer than 3 chars) of the normalized name or brand
//     appears in the normalized message
//
// The first record satisfying any tier wins. This is deliberately
// first-match over the catalog, not best-match: catalog order acts as a
// priority list.
func (e *EntityExtractor) Resolve(message string) (domain.ProductRecord, bool) {
	msgLower := strings.ToLower(message)
	msgNorm := Normalize(message)

	for _, rec := range e.catalog {
		nameLower := strings.ToLower(rec.FlaggedName)
		brandLower := strings.ToLower(rec.Brand)

		if nameLower != "" && strings.Contains(msgLower, nameLower) {
			return rec, true
		}
		if brandLower != "" && strings.Contains(msgLower, brandLower) {
			return rec, true
		}

		nameNorm := Normalize(rec.FlaggedName)
		brandNorm := Normalize(rec.Brand)

		if nameNorm != "" && strings.Contains(msgNorm, nameNorm) {
			return rec, true
		}
		if brandNorm != "" && strings.Contains(msgNorm, brandNorm) {
			return rec, true
		}

		if containsLongWord(msgNorm, nameNorm) || containsLongWord(msgNorm, brandNorm) {
			return rec, true
		}
	}

	return domain.ProductRecord{}, false
}

// containsLongWord reports whether any word of candidate longer than 3
// characters occurs in the message. Short words ("the", "co") trigger too
// many false positives to be useful match signals.
func containsLongWord(message, candidate string) bool {
	for _, word := range strings.Fields(candidate) {
		if utf8.RuneCountInString(word) > 3 && strings.Contains(message, word) {
			return true
		}
	}
	return false
}
