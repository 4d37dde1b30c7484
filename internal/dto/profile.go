package dto

import (
	"github.com/shopspring/decimal"
)

// UpsertProfileRequest creates or replaces a user's financial profile
type UpsertProfileRequest struct {
	UserID              string           `json:"user_id,omitempty" validate:"omitempty,max=100"`
	Name                string           `json:"name,omitempty" validate:"omitempty,max=255"`
	Age                 *int             `json:"age,omitempty" validate:"omitempty,gte=13,lte=120"`
	MonthlyIncome       *decimal.Decimal `json:"monthly_income,omitempty" validate:"omitempty,money_amount"`
	RiskTolerance       string           `json:"risk_tolerance,omitempty" validate:"omitempty,risk_tolerance"`
	PreferredCurrency   string           `json:"preferred_currency,omitempty" validate:"omitempty,max=10"`
	NotificationEnabled *bool            `json:"notification_enabled,omitempty"`
}
