package domain

// IntentTag is the coarse topic label assigned to a message that does not
// reference a specific catalog record.
type IntentTag string

const (
	IntentWhyBoycott       IntentTag = "why_boycott"
	IntentFindAlternative  IntentTag = "find_alternative"
	IntentStatistics       IntentTag = "statistics"
	IntentPalestineSupport IntentTag = "palestine_support"
	IntentGeneral          IntentTag = "general"
)

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is one entry in a session transcript.
type ConversationTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// SentimentResult is the outcome of lexicon-based feedback analysis.
type SentimentResult struct {
	Text       string  `json:"text"`
	Label      string  `json:"label"`
	Score      float64 `json:"score"`
	Category   string  `json:"category"`
	Actionable bool    `json:"actionable"`
	Suggestion string  `json:"suggestion"`
}

// Sentiment labels.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"
)

// Feedback categories, in classification priority order.
const (
	CategoryUIUX        = "UI/UX"
	CategoryPerformance = "Performance"
	CategoryContent     = "Content"
	CategoryBug         = "Bug"
	CategoryGeneral     = "General"
)
