package dto

import "finplanner/internal/models"

// FinancialData is the snapshot of a user's finances used for health scoring
type FinancialData struct {
	MonthlyIncome   float64 `json:"monthly_income" validate:"gte=0"`
	MonthlyExpenses float64 `json:"monthly_expenses" validate:"gte=0"`
	TotalSavings    float64 `json:"total_savings" validate:"gte=0"`
	TotalDebt       float64 `json:"total_debt" validate:"gte=0"`
	EmergencyFund   float64 `json:"emergency_fund" validate:"gte=0"`
}

// HealthScoreRequest asks for a wellness score calculation
type HealthScoreRequest struct {
	FinancialData
	UserID string `json:"user_id,omitempty" validate:"omitempty,max=100"`
}

// ActionItemsRequest asks for prioritized recommendations from a health profile
type ActionItemsRequest struct {
	FinancialData
}

// ActionItemsResponse lists recommendations for the weakest score components
type ActionItemsResponse struct {
	ActionItems []models.ActionItem `json:"action_items"`
	Count       int                 `json:"count"`
}
