package dto

import (
	"github.com/shopspring/decimal"

	"finplanner/internal/models"
)

// CreateGoalRequest creates a new savings goal
type CreateGoalRequest struct {
	UserID        string           `json:"user_id,omitempty" validate:"omitempty,max=100"`
	Name          string           `json:"name" validate:"required,max=255"`
	Description   string           `json:"description,omitempty" validate:"omitempty,max=1000"`
	TargetAmount  decimal.Decimal  `json:"target_amount" validate:"required,money_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	Deadline      *string          `json:"deadline,omitempty"`
	Priority      int              `json:"priority,omitempty" validate:"omitempty,goal_priority"`
}

// UpdateGoalRequest updates an existing goal; nil fields are left unchanged
type UpdateGoalRequest struct {
	Name          *string          `json:"name,omitempty" validate:"omitempty,max=255"`
	Description   *string          `json:"description,omitempty" validate:"omitempty,max=1000"`
	TargetAmount  *decimal.Decimal `json:"target_amount,omitempty" validate:"omitempty,money_amount"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	Deadline      *string          `json:"deadline,omitempty"`
	Priority      *int             `json:"priority,omitempty" validate:"omitempty,goal_priority"`
	Status        *string          `json:"status,omitempty" validate:"omitempty,goal_status"`
}

// GoalPlanRequest asks for a savings plan toward a goal
type GoalPlanRequest struct {
	MonthlyIncome *decimal.Decimal `json:"monthly_income,omitempty"`
}

// GoalPlanResponse carries the plan together with generated recommendations
type GoalPlanResponse struct {
	Goal                 *models.Goal        `json:"goal"`
	Plan                 *models.SavingsPlan `json:"plan"`
	Recommendations      []string            `json:"recommendations"`
	RecommendationSource string              `json:"recommendation_source"`
}

// GoalProgressRequest records a contribution toward a goal
type GoalProgressRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
	Note   string          `json:"note,omitempty" validate:"omitempty,max=500"`
}

// GoalProgressResponse reports progress after a contribution is recorded
type GoalProgressResponse struct {
	Goal     *models.Goal         `json:"goal"`
	Progress *models.GoalProgress `json:"progress"`
}

// ListGoalsResponse lists a user's goals
type ListGoalsResponse struct {
	Goals []models.Goal `json:"goals"`
	Count int           `json:"count"`
}

// PrioritizeGoalsResponse orders active goals by computed priority score
type PrioritizeGoalsResponse struct {
	Goals []models.PrioritizedGoal `json:"goals"`
	Count int                      `json:"count"`
}
