package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/consumesafe/backend/config"
	"github.com/consumesafe/backend/internal/domain"
	"github.com/consumesafe/backend/internal/infrastructure/cache"
	"github.com/consumesafe/backend/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []domain.ProductRecord {
	return []domain.ProductRecord{
		{
			ID: "1", FlaggedName: "Coca-Cola", Brand: "Coca-Cola Company",
			Category: "Beverages", Reason: "Soutien financier",
			Intensity: domain.IntensityHigh,
			AlternativeName: "Boga", AlternativeBrand: "SFBT",
		},
		{
			ID: "2", FlaggedName: "Pepsi", Brand: "PepsiCo",
			Category: "Beverages", Reason: "Investissements",
			Intensity: domain.IntensityHigh,
			AlternativeName: "Safia Cola", AlternativeBrand: "Safia",
		},
		{
			ID: "3", FlaggedName: "Ariel", Brand: "Procter & Gamble",
			Category: "Cleaning", Reason: "Soutien économique",
			Intensity: domain.IntensityMedium,
			AlternativeName: "Nadhif", AlternativeBrand: "Sodet",
		},
	}
}

func newTestRouter(t *testing.T, products []domain.ProductRecord) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	memoryCache := cache.NewMemoryCache(time.Hour)
	catalogService := usecase.NewCatalogService(products, memoryCache, usecase.CatalogServiceConfig{CacheTTL: time.Minute})
	recommender := usecase.NewRecommendationEngine(products)
	sentiment := usecase.NewSentimentClassifier()
	chatService := usecase.NewChatService(products, 0)

	handler := NewHandler(catalogService, recommender, sentiment, chatService)

	cfg := &config.Config{
		Server: config.ServerConfig{
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:*"},
		},
		RateLimit: config.RateLimitConfig{
			PerClient:   1000,
			Window:      time.Minute,
			GlobalRPS:   1000,
			GlobalBurst: 1000,
		},
	}
	return SetupRouter(cfg, handler)
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t, testCatalog())
	w := doRequest(router, "GET", "/health", "")

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.EqualValues(t, 3, body["productsLoaded"])
}

func TestCheckProductEndpoint(t *testing.T) {
	router := newTestRouter(t, testCatalog())

	t.Run("flagged product", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/products/check?name=pepsi", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["found"])
	})

	t.Run("safe product", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/products/check?name=couscous", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["found"])
	})

	t.Run("missing name", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/products/check", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSearchEndpoint(t *testing.T) {
	router := newTestRouter(t, testCatalog())

	t.Run("ranked results", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/products/search?q=coca&limit=5", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Query   string                   `json:"query"`
			Count   int                      `json:"count"`
			Results []domain.ScoredCandidate `json:"results"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.NotEmpty(t, body.Results)
		assert.Equal(t, "Coca-Cola", body.Results[0].Record.FlaggedName)
		assert.Equal(t, 1.0, body.Results[0].Score)
	})

	t.Run("empty query rejected", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/products/search?q=", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListAndFilters(t *testing.T) {
	router := newTestRouter(t, testCatalog())

	t.Run("list with limit", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/products?limit=2", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body []domain.ProductRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body, 2)
	})

	t.Run("by category", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/categories/Beverages", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Count)
	})

	t.Run("by intensity valid", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/intensity/High", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Count)
	})

	t.Run("by intensity invalid", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/intensity/Extreme", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("categories sorted", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/categories", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Categories []string `json:"categories"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, []string{"Beverages", "Cleaning"}, body.Categories)
	})

	t.Run("stats", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/stats", "")
		require.Equal(t, http.StatusOK, w.Code)

		var stats domain.CatalogStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, 3, stats.TotalProducts)
		assert.Equal(t, 2, stats.ByCategory["Beverages"])
	})
}

func TestAlternativesEndpoint(t *testing.T) {
	router := newTestRouter(t, testCatalog())

	w := doRequest(router, "GET", "/api/v1/products/alternatives?name=coca-cola", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Boga", body["alternative"])
	assert.Equal(t, "SFBT", body["alternativeBrand"])
}

func TestChatEndpoint(t *testing.T) {
	router := newTestRouter(t, testCatalog())

	t.Run("product question", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/v1/chat", `{"message":"what about coca cola"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Contains(t, body["reply"], "Coca-Cola")
		assert.Contains(t, body["reply"], "Boga")
	})

	t.Run("missing message", func(t *testing.T) {
		w := doRequest(router, "POST", "/api/v1/chat", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRecommendationsEndpoint(t *testing.T) {
	router := newTestRouter(t, testCatalog())

	t.Run("history fan-out", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/recommendations?history=coca-cola&limit=5", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Count           int                      `json:"count"`
			Recommendations []domain.ScoredCandidate `json:"recommendations"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, 2, body.Count)
		assert.Equal(t, 1.0, body.Recommendations[0].Score)
	})

	t.Run("empty history is empty result", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/recommendations", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 0, body.Count)
	})
}

func TestFeedbackEndpoint(t *testing.T) {
	router := newTestRouter(t, testCatalog())

	w := doRequest(router, "POST", "/api/v1/feedback", `{"message":"This is terrible, full of bugs"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result domain.SentimentResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, domain.SentimentNegative, result.Label)
	assert.Equal(t, domain.CategoryBug, result.Category)
	assert.True(t, result.Actionable)
}

func TestDegradedCatalog(t *testing.T) {
	router := newTestRouter(t, nil)

	for _, path := range []string{
		"/api/v1/products/check?name=pepsi",
		"/api/v1/products/search?q=coca",
		"/api/v1/stats",
	} {
		w := doRequest(router, "GET", path, "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, "path %s", path)
	}
}

func TestRequestContext(t *testing.T) {
	// Handlers must pass the request context through to cached aggregate
	// lookups; a canceled context must still answer (cache errors degrade
	// to recompute, never to failure).
	router := newTestRouter(t, testCatalog())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest("GET", "/api/v1/stats", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
