package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/consumesafe/backend/internal/domain"
	"github.com/consumesafe/backend/internal/usecase"
	"github.com/gin-gonic/gin"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	catalog     *usecase.CatalogService
	recommender *usecase.RecommendationEngine
	sentiment   *usecase.SentimentClassifier
	chat        *usecase.ChatService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	catalog *usecase.CatalogService,
	recommender *usecase.RecommendationEngine,
	sentiment *usecase.SentimentClassifier,
	chat *usecase.ChatService,
) *Handler {
	return &Handler{
		catalog:     catalog,
		recommender: recommender,
		sentiment:   sentiment,
		chat:        chat,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"service":        "consumesafe-backend",
		"productsLoaded": h.catalog.Stats(c.Request.Context()).TotalProducts,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
	})
}

// CheckProduct reports whether a product is on the boycott list.
func (h *Handler) CheckProduct(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}
	name, err := validateQuery(c.Query("name"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product name"})
		return
	}

	rec, err := h.catalog.CheckProduct(name)
	if errors.Is(err, domain.ErrProductNotFound) {
		c.JSON(http.StatusOK, gin.H{
			"found":   false,
			"message": "Product not on boycott list",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product name"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found":   true,
		"product": rec,
		"message": rec.FlaggedName + " is on the boycott list",
	})
}

// SearchProducts ranks catalog records against a free-text query.
func (h *Handler) SearchProducts(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}
	query, err := validateQuery(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query cannot be empty"})
		return
	}
	limit := queryInt(c, "limit", 50, 100)

	results, err := h.catalog.Search(query, limit)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"count":   len(results),
		"results": results,
	})
}

// ListProducts returns catalog records in catalog order.
func (h *Handler) ListProducts(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}
	limit := queryInt(c, "limit", 100, 500)
	c.JSON(http.StatusOK, h.catalog.List(limit))
}

// GetAlternatives returns the recorded substitute for a flagged product.
func (h *Handler) GetAlternatives(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}
	name, err := validateQuery(c.Query("name"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product name"})
		return
	}

	rec, err := h.catalog.CheckProduct(name)
	if errors.Is(err, domain.ErrProductNotFound) {
		c.JSON(http.StatusOK, gin.H{
			"found":   false,
			"message": "Product not on boycott list",
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product name"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"product":          rec.FlaggedName,
		"brand":            rec.Brand,
		"alternative":      rec.AlternativeName,
		"alternativeBrand": rec.AlternativeBrand,
		"category":         rec.Category,
		"message":          "Support " + rec.AlternativeName + " instead of " + rec.FlaggedName,
	})
}

// GetCategories returns all product categories.
func (h *Handler) GetCategories(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}
	categories := h.catalog.Categories(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// GetByCategory returns products in one category.
func (h *Handler) GetByCategory(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}
	category := sanitizeInput(c.Param("category"), maxCategoryLength)
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	products := h.catalog.ByCategory(category)
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"count":    len(products),
		"products": products,
	})
}

// GetByIntensity returns products with one boycott intensity (High, Medium, Low).
func (h *Handler) GetByIntensity(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}
	intensity := sanitizeInput(c.Param("intensity"), maxCategoryLength)

	products, err := h.catalog.ByIntensity(intensity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"intensity": intensity,
		"count":     len(products),
		"products":  products,
	})
}

// GetStats returns catalog statistics.
func (h *Handler) GetStats(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}
	c.JSON(http.StatusOK, h.catalog.Stats(c.Request.Context()))
}

// chatRequest is the body of POST /chat.
type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat answers one conversational message.
func (h *Handler) Chat(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	reply, err := h.chat.Chat(sanitizeInput(req.Message, maxMessageLength))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// GetRecommendations derives recommendations from the viewing history
// passed as repeated history query parameters.
func (h *Handler) GetRecommendations(c *gin.Context) {
	if !h.requireCatalog(c) {
		return
	}
	history := c.QueryArray("history")
	for i, item := range history {
		history[i] = sanitizeInput(item, maxQueryLength)
	}
	limit := queryInt(c, "limit", 5, 50)

	results := h.recommender.Recommend(history, limit)
	c.JSON(http.StatusOK, gin.H{
		"count":           len(results),
		"recommendations": results,
	})
}

// feedbackRequest is the body of POST /feedback.
type feedbackRequest struct {
	Message string `json:"message" binding:"required"`
}

// AnalyzeFeedback runs sentiment analysis over free-text feedback.
func (h *Handler) AnalyzeFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	message := sanitizeInput(req.Message, maxMessageLength)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	c.JSON(http.StatusOK, h.sentiment.Analyze(message))
}

// requireCatalog aborts with 503 when the catalog snapshot is empty. An
// unloaded catalog is a service condition, not an empty result.
func (h *Handler) requireCatalog(c *gin.Context) bool {
	if !h.catalog.Loaded() {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"error": domain.ErrCatalogUnavailable.Error(),
		})
		return false
	}
	return true
}

// queryInt parses an optional integer query parameter, clamped to [1, max].
func queryInt(c *gin.Context, name string, fallback, max int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	if n > max {
		return max
	}
	return n
}
