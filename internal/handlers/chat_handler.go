package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"finplanner/internal/dto"
	"finplanner/internal/errors"
	"finplanner/internal/knowledge"
	"finplanner/internal/services"
)

const (
	defaultSearchTopK = 3
	maxSearchTopK     = 10
)

// ChatHandler handles conversational and knowledge search requests
type ChatHandler struct {
	insights services.InsightServiceInterface
	store    services.KnowledgeSearcherInterface
	metrics  services.MetricsRecorderInterface
}

// NewChatHandler creates a new chat handler
func NewChatHandler(
	insights services.InsightServiceInterface,
	store services.KnowledgeSearcherInterface,
	metrics services.MetricsRecorderInterface,
) *ChatHandler {
	return &ChatHandler{
		insights: insights,
		store:    store,
		metrics:  metrics,
	}
}

// Chat answers a question grounded on retrieved knowledge snippets
func (h *ChatHandler) Chat(c echo.Context) error {
	var req dto.ChatRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	answer := h.insights.Chat(c.Request().Context(), req.Message, req.ToModels())

	return c.JSON(http.StatusOK, answer)
}

// KnowledgeSearch runs a direct retrieval query against one collection
func (h *ChatHandler) KnowledgeSearch(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return SendError(c, errors.ValidationRequiredField,
			errors.WithDetails("query parameter 'q' is required"))
	}

	collection := c.QueryParam("collection")
	if collection == "" {
		collection = knowledge.CollectionFinancialKnowledge
	}

	topK := getIntParam(c, "top_k", defaultSearchTopK)
	if topK < 1 {
		topK = defaultSearchTopK
	}
	if topK > maxSearchTopK {
		topK = maxSearchTopK
	}

	results, err := h.store.Search(c.Request().Context(), query, collection, topK)
	if err != nil {
		return SendSystemError(c, err)
	}
	if results == nil {
		results = []knowledge.Snippet{}
	}

	h.metrics.IncrementCounter("knowledge.search", map[string]string{"collection": collection})

	return c.JSON(http.StatusOK, dto.KnowledgeSearchResponse{
		Query:      query,
		Collection: collection,
		Results:    results,
		Count:      len(results),
	})
}
