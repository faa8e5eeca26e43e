package usecase

import (
	"fmt"
	"strings"
	"sync"

	"github.com/consumesafe/backend/internal/domain"
	"go.uber.org/zap"
)

// ChatService composes human-readable replies over the catalog and records
// them in a linear transcript. One ChatService owns one conversation
// session; the mutex makes concurrent HTTP handlers safe against each other.
type ChatService struct {
	catalog   []domain.ProductRecord
	extractor *EntityExtractor
	intents   *IntentClassifier
	maxTurns  int

	mu         sync.Mutex
	transcript []domain.ConversationTurn
}

// NewChatService creates a chat service over the catalog snapshot.
// maxTurns bounds transcript growth; 0 means unlimited (the transcript then
// grows for the lifetime of the session).
func NewChatService(catalog []domain.ProductRecord, maxTurns int) *ChatService {
	return &ChatService{
		catalog:   catalog,
		extractor: NewEntityExtractor(catalog),
		intents:   NewIntentClassifier(),
		maxTurns:  maxTurns,
	}
}

// Chat answers one message: a product reference gets a product-detail
// reply, anything else goes through intent classification. Both the user
// message and the reply are appended to the transcript.
func (s *ChatService) Chat(message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", domain.ErrInvalidRequest
	}

	var reply string
	if rec, ok := s.extractor.Resolve(message); ok {
		reply = s.productReply(rec)
	} else {
		intent := s.intents.Classify(message)
		reply = s.intentReply(intent)
		zap.L().Debug("chat: no entity match",
			zap.String("component", "chat"),
			zap.String("intent", string(intent)))
	}

	s.record(message, reply)
	return reply, nil
}

// Transcript returns a copy of the conversation so far.
func (s *ChatService) Transcript() []domain.ConversationTurn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ConversationTurn, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// record appends the (user, assistant) turn pair, evicting the oldest turns
// when a transcript cap is configured.
func (s *ChatService) record(message, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript = append(s.transcript,
		domain.ConversationTurn{Role: domain.RoleUser, Text: message},
		domain.ConversationTurn{Role: domain.RoleAssistant, Text: reply},
	)
	if s.maxTurns > 0 && len(s.transcript) > s.maxTurns {
		s.transcript = s.transcript[len(s.transcript)-s.maxTurns:]
	}
}

func (s *ChatService) intentReply(intent domain.IntentTag) string {
	switch intent {
	case domain.IntentWhyBoycott:
		return s.whyBoycottReply()
	case domain.IntentFindAlternative:
		return "Je n'ai pas bien compris le produit. Pouvez-vous être plus spécifique?"
	case domain.IntentStatistics:
		return s.statisticsReply()
	case domain.IntentPalestineSupport:
		return s.palestineReply()
	default:
		return generalReply
	}
}

// productReply answers about one flagged product, short and direct.
func (s *ChatService) productReply(rec domain.ProductRecord) string {
	reason := rec.Reason
	if reason == "" {
		reason = "Soutien à l'occupation"
	}
	alternative := rec.AlternativeName
	if alternative == "" {
		alternative = "N/A"
	}
	altBrand := rec.AlternativeBrand
	if altBrand == "" {
		altBrand = "N/A"
	}

	return fmt.Sprintf(`À BOYCOTTER: %s
Marque: %s
Raison: %s

ALTERNATIVE TUNISIENNE: %s
Marque: %s`, rec.FlaggedName, rec.Brand, reason, alternative, altBrand)
}

// whyBoycottReply lists the top catalog entries. Catalog order doubles as
// a popularity ordering, so the first five records are the headline list.
func (s *ChatService) whyBoycottReply() string {
	top := s.catalog
	if len(top) > 5 {
		top = top[:5]
	}

	var b strings.Builder
	b.WriteString("Produits à Boycotter:\n\n")
	for _, rec := range top {
		fmt.Fprintf(&b, "- %s (%s)\n", rec.FlaggedName, rec.Brand)
	}
	if rest := len(s.catalog) - len(top); rest > 0 {
		fmt.Fprintf(&b, "\n... et %d autres\n", rest)
	}
	b.WriteString("\nImpact: $10+ milliards de pertes depuis 2023\n")
	b.WriteString(`Demandez: "Coca Cola" ou "Alternative pour [produit]"?`)
	return b.String()
}

func (s *ChatService) statisticsReply() string {
	categories := make(map[string]bool)
	brands := make(map[string]bool)
	for _, rec := range s.catalog {
		categories[rec.Category] = true
		brands[rec.Brand] = true
	}
	return fmt.Sprintf(`Statistiques:

- Produits: %d
- Catégories: %d
- Marques: %d

Demandez un produit spécifique pour plus d'info!`, len(s.catalog), len(categories), len(brands))
}

func (s *ChatService) palestineReply() string {
	return fmt.Sprintf(`ConsumeSafe pour la Palestine:

- %d marques boycottées identifiées
- 100+ alternatives tunisiennes
- $10+ milliards d'impact global

Votre consommation = votre vote pour la justice!`, len(s.catalog))
}

const generalReply = `Comment vous aider?

- "Coca Cola" pour l'info produit
- "Statistiques" pour les chiffres
- "Palestine" pour le pourquoi
- "Quels produits?" pour la liste`
