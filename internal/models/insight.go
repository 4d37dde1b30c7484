package models

// Insight sources. Generated means the text came from the language model,
// fallback means the deterministic templates were used because a
// collaborator call failed.
const (
	InsightSourceGenerated = "generated"
	InsightSourceFallback  = "fallback"
)

// InsightResult carries natural-language insight lines together with which
// path produced them. Insights is never empty.
type InsightResult struct {
	Insights []string `json:"insights"`
	Source   string   `json:"source"`
}

// IsFallback reports whether the deterministic fallback path produced the text
func (r *InsightResult) IsFallback() bool {
	return r.Source == InsightSourceFallback
}

// ActionItem is a prioritized recommendation for a weak health component
type ActionItem struct {
	Area           string  `json:"area"`
	CurrentScore   float64 `json:"current_score"`
	Target         string  `json:"target"`
	Priority       string  `json:"priority"`
	Recommendation string  `json:"recommendation"`
	Source         string  `json:"source"`
}

// ChatMessage is a single turn of a conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatSource is a knowledge snippet that informed a chat answer
type ChatSource struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// ChatAnswer is the response to a conversational question
type ChatAnswer struct {
	Response string       `json:"response"`
	Sources  []ChatSource `json:"sources,omitempty"`
	Source   string       `json:"source"`
}
