package models

// Health score component names
const (
	ComponentEmergencyFund   = "emergency_fund"
	ComponentDebtManagement  = "debt_management"
	ComponentSavingsRate     = "savings_rate"
	ComponentBudgetAdherence = "budget_adherence"
)

// Component status labels
const (
	StatusExcellent        = "excellent"
	StatusGood             = "good"
	StatusFair             = "fair"
	StatusNeedsImprovement = "needs_improvement"
)

// ComponentScore is a single weighted sub-score of the overall health score.
// Metric carries the raw derived ratio the score was computed from
// (months covered, debt-to-income %, savings rate %, expense ratio %).
type ComponentScore struct {
	Score  float64 `json:"score"`
	Weight float64 `json:"weight"`
	Metric float64 `json:"metric"`
	Target string  `json:"target"`
	Status string  `json:"status"`
}

// HealthScoreResult is the full 0-100 wellness score with its breakdown.
// OverallScore equals the weight-sum of the component scores, and the
// component weights sum to exactly 1.0.
type HealthScoreResult struct {
	OverallScore float64                   `json:"overall_score"`
	Grade        string                    `json:"grade"`
	Components   map[string]ComponentScore `json:"components"`
	Summary      string                    `json:"summary"`
}

// PeerComparison relates a health score to age-bracket averages
type PeerComparison struct {
	YourScore   float64 `json:"your_score"`
	PeerAverage float64 `json:"peer_average"`
	Difference  float64 `json:"difference"`
	Percentile  float64 `json:"percentile"`
	Message     string  `json:"message"`
}
