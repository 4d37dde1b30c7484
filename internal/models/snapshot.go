package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FinancialSnapshot is a persisted monthly summary of a user's finances,
// written after each health score calculation for trend reporting.
type FinancialSnapshot struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID              string          `gorm:"type:varchar(100);index" json:"user_id"`
	Month               int             `gorm:"not null" json:"month"`
	Year                int             `gorm:"not null" json:"year"`
	TotalIncome         decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total_income"`
	TotalExpenses       decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total_expenses"`
	TotalSavings        decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total_savings"`
	DebtToIncomeRatio   *float64        `json:"debt_to_income_ratio,omitempty"`
	SavingsRate         *float64        `json:"savings_rate,omitempty"`
	EmergencyFundMonths *float64        `json:"emergency_fund_months,omitempty"`
	HealthScore         *float64        `json:"health_score,omitempty"`
	CreatedAt           time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for FinancialSnapshot
func (s *FinancialSnapshot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	return nil
}
