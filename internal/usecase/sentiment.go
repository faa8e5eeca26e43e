package usecase

import (
	"fmt"
	"strings"

	"github.com/consumesafe/backend/internal/domain"
)

// Polarity lexicons, mixed French/English like the user base. Matching is
// by occurrence count, so a term repeated many times raises the score
// without bound. That is intentional: the score is a signal strength, not
// a probability.
var (
	positiveLexicon = []string{"excellent", "bon", "merveilleux", "fantastic", "love", "adore", "parfait"}
	negativeLexicon = []string{"mauvais", "nul", "terrible", "hate", "awful", "problème", "bug", "erreur"}
)

// categoryRule maps feedback keywords to a category. Evaluated in order,
// first group with a hit wins.
type categoryRule struct {
	keywords []string
	category string
}

var categoryRules = []categoryRule{
	{keywords: []string{"interface", "design", "couleur", "button"}, category: domain.CategoryUIUX},
	{keywords: []string{"vitesse", "lent", "fast", "performance"}, category: domain.CategoryPerformance},
	{keywords: []string{"produit", "données", "data", "alternative"}, category: domain.CategoryContent},
	{keywords: []string{"bug", "erreur", "error", "crash"}, category: domain.CategoryBug},
}

// SentimentClassifier performs lexicon-based polarity and category tagging
// of free-text feedback.
type SentimentClassifier struct{}

// NewSentimentClassifier creates a sentiment classifier.
func NewSentimentClassifier() *SentimentClassifier {
	return &SentimentClassifier{}
}

// Analyze classifies the polarity and category of text and attaches a
// templated follow-up suggestion. Neutral feedback scores exactly 0.5;
// positive/negative scores start at 0.8 and grow 0.1 per lexicon hit.
func (s *SentimentClassifier) Analyze(text string) domain.SentimentResult {
	textLower := strings.ToLower(text)

	positiveCount := countLexiconHits(textLower, positiveLexicon)
	negativeCount := countLexiconHits(textLower, negativeLexicon)

	label := domain.SentimentNeutral
	score := 0.5
	switch {
	case positiveCount > negativeCount:
		label = domain.SentimentPositive
		score = 0.8 + float64(positiveCount)*0.1
	case negativeCount > positiveCount:
		label = domain.SentimentNegative
		score = 0.8 + float64(negativeCount)*0.1
	}

	category := categorizeFeedback(textLower)

	return domain.SentimentResult{
		Text:       text,
		Label:      label,
		Score:      score,
		Category:   category,
		Actionable: label == domain.SentimentNegative || label == domain.SentimentNeutral,
		Suggestion: suggestionFor(label, category),
	}
}

// countLexiconHits sums occurrences of every lexicon term in the text.
func countLexiconHits(textLower string, lexicon []string) int {
	count := 0
	for _, term := range lexicon {
		count += strings.Count(textLower, term)
	}
	return count
}

// categorizeFeedback assigns the first matching feedback category, in fixed
// priority order, defaulting to General.
func categorizeFeedback(textLower string) string {
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(textLower, kw) {
				return rule.category
			}
		}
	}
	return domain.CategoryGeneral
}

// suggestionFor selects the follow-up template for a (label, category) pair.
func suggestionFor(label, category string) string {
	switch label {
	case domain.SentimentNegative:
		return fmt.Sprintf("Negative feedback detected in %s. Investigate as priority.", category)
	case domain.SentimentNeutral:
		return fmt.Sprintf("Improvement suggestion in %s. Review.", category)
	default:
		return fmt.Sprintf("Positive feedback! User satisfied with %s.", category)
	}
}
