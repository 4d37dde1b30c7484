package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrDescriptionRequired = errors.New("transaction description is required")
	ErrInvalidCategory     = errors.New("invalid transaction category")
)

// Transaction represents a single financial transaction. Negative amounts
// are expenses, positive amounts are income.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string          `gorm:"type:varchar(100);index" json:"user_id,omitempty"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category    string          `gorm:"type:varchar(50)" json:"category,omitempty"`
	Account     string          `gorm:"type:varchar(100)" json:"account,omitempty"`
	Notes       string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}
	if t.Date.IsZero() {
		t.Date = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.Description == "" {
		return ErrDescriptionRequired
	}
	if t.Category != "" && !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}
	return nil
}

// IsExpense returns true for negative amounts
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome returns true for positive amounts
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}
