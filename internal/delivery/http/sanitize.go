package http

import (
	"strings"
	"unicode/utf8"

	"github.com/consumesafe/backend/internal/domain"
)

// Input length caps at the delivery boundary.
const (
	maxQueryLength    = 100
	maxMessageLength  = 500
	maxCategoryLength = 50
)

// sanitizeInput caps length and strips control bytes from user-supplied
// text before it reaches the core. The core itself is total over strings;
// this only bounds what we accept over the wire.
func sanitizeInput(text string, maxLength int) string {
	if len(text) > maxLength {
		// Cut on a rune boundary so accented input never ends mid-sequence.
		cut := maxLength
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	text = strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, text)
	return strings.TrimSpace(text)
}

// validateQuery sanitizes a search query, rejecting empty input.
func validateQuery(q string) (string, error) {
	q = sanitizeInput(q, maxQueryLength)
	if q == "" {
		return "", domain.ErrInvalidRequest
	}
	return q, nil
}
