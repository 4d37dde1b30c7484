package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RiskToleranceConservative = "conservative"
	RiskToleranceModerate     = "moderate"
	RiskToleranceAggressive   = "aggressive"
)

// UserProfile holds the financial profile used to contextualize analysis
type UserProfile struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	UserID              string           `gorm:"type:varchar(100);uniqueIndex;not null" json:"user_id"`
	Name                string           `gorm:"type:varchar(255)" json:"name,omitempty"`
	Age                 *int             `json:"age,omitempty"`
	MonthlyIncome       *decimal.Decimal `gorm:"type:decimal(15,2)" json:"monthly_income,omitempty"`
	RiskTolerance       string           `gorm:"type:varchar(20)" json:"risk_tolerance,omitempty"`
	PreferredCurrency   string           `gorm:"type:varchar(10);default:'USD'" json:"preferred_currency"`
	NotificationEnabled bool             `gorm:"default:true" json:"notification_enabled"`
	CreatedAt           time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time        `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for UserProfile
func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	if p.PreferredCurrency == "" {
		p.PreferredCurrency = "USD"
	}

	return nil
}

// BeforeUpdate hook for UserProfile
func (p *UserProfile) BeforeUpdate(tx *gorm.DB) error {
	p.UpdatedAt = time.Now()
	return nil
}
