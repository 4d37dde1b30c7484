package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal progress status labels
const (
	ProgressCompleted      = "completed"
	ProgressOnTrack        = "on_track"
	ProgressNeedsAttention = "needs_attention"
)

// Milestone is a quarterly checkpoint inside a savings plan
type Milestone struct {
	Date          string          `json:"date"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	MonthsFromNow int             `json:"months_from_now"`
}

// SavingsPlan describes how to reach a goal target by its deadline
type SavingsPlan struct {
	RemainingAmount      decimal.Decimal `json:"remaining_amount"`
	MonthsRemaining      float64         `json:"months_remaining"`
	MonthlySavingsNeeded decimal.Decimal `json:"monthly_savings_needed"`
	Feasible             bool            `json:"feasible"`
	FeasibilityMessage   string          `json:"feasibility_message"`
	PercentageOfIncome   *float64        `json:"percentage_of_income,omitempty"`
	Milestones           []Milestone     `json:"milestones"`
}

// GoalProgress summarizes how far along a goal is
type GoalProgress struct {
	Percentage float64         `json:"percentage"`
	Remaining  decimal.Decimal `json:"remaining"`
	Status     string          `json:"status"`
	Message    string          `json:"message"`
}

// PrioritizedGoal is a goal annotated with its computed priority score
type PrioritizedGoal struct {
	GoalID        uuid.UUID       `json:"goal_id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	PriorityScore int             `json:"priority_score"`
}
