package usecase

import (
	"strings"

	"github.com/consumesafe/backend/internal/domain"
)

// intentRule maps a keyword group to an intent tag. Rules are evaluated in
// slice order and the first group with any keyword present wins, so the
// ordering below is itself the tie-break for ambiguous messages.
type intentRule struct {
	keywords []string
	tag      domain.IntentTag
}

// intentRules carries the mixed French/English vocabulary of the user base.
// Boycott-listing keywords are checked before reason keywords, which are
// checked before alternative keywords, and so on.
var intentRules = []intentRule{
	{keywords: []string{"produits", "products", "boycotter", "boycott", "listes", "list"}, tag: domain.IntentWhyBoycott},
	{keywords: []string{"pourquoi", "why", "raison", "reason"}, tag: domain.IntentWhyBoycott},
	{keywords: []string{"alternative", "remplacer", "autre", "tunisien", "replace"}, tag: domain.IntentFindAlternative},
	{keywords: []string{"stats", "statistiques", "nombre", "total", "combien"}, tag: domain.IntentStatistics},
	{keywords: []string{"palestine", "enfants", "children", "guerre", "war"}, tag: domain.IntentPalestineSupport},
}

// IntentClassifier assigns a coarse topic label to messages that do not
// reference a specific catalog record.
type IntentClassifier struct{}

// NewIntentClassifier creates an intent classifier.
func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{}
}

// Classify returns the intent of the message, falling through to
// IntentGeneral when no keyword group matches.
func (c *IntentClassifier) Classify(message string) domain.IntentTag {
	msgLower := strings.ToLower(message)
	for _, rule := range intentRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msgLower, kw) {
				return rule.tag
			}
		}
	}
	return domain.IntentGeneral
}
