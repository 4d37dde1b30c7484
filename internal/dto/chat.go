package dto

import (
	"finplanner/internal/knowledge"
	"finplanner/internal/models"
)

// ChatRequest is a conversational question with optional prior turns
type ChatRequest struct {
	Message string               `json:"message" validate:"required,max=2000"`
	History []ChatHistoryMessage `json:"history,omitempty" validate:"omitempty,max=50,dive"`
}

// ChatHistoryMessage is a prior conversation turn
type ChatHistoryMessage struct {
	Role    string `json:"role" validate:"required,chat_role"`
	Content string `json:"content" validate:"required,max=2000"`
}

// ToModels converts history turns to the model representation
func (r *ChatRequest) ToModels() []models.ChatMessage {
	history := make([]models.ChatMessage, 0, len(r.History))
	for _, m := range r.History {
		history = append(history, models.ChatMessage{Role: m.Role, Content: m.Content})
	}
	return history
}

// KnowledgeSearchResponse lists retrieval hits for a knowledge query
type KnowledgeSearchResponse struct {
	Query      string              `json:"query"`
	Collection string              `json:"collection"`
	Results    []knowledge.Snippet `json:"results"`
	Count      int                 `json:"count"`
}
