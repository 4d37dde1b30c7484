package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusPaused    = "paused"

	GoalPriorityHigh   = 1
	GoalPriorityMedium = 2
	GoalPriorityLow    = 3
)

var (
	ErrGoalNameRequired    = errors.New("goal name is required")
	ErrInvalidGoalTarget   = errors.New("goal target amount must be positive")
	ErrInvalidGoalStatus   = errors.New("invalid goal status")
	ErrInvalidGoalPriority = errors.New("goal priority must be 1 (high), 2 (medium) or 3 (low)")
)

// Goal is a savings goal with a target amount and optional deadline
type Goal struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        string          `gorm:"type:varchar(100);index" json:"user_id,omitempty"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description,omitempty"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"current_amount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Priority      int             `gorm:"default:2" json:"priority"`
	Status        string          `gorm:"type:varchar(20);default:'active'" json:"status"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`

	Updates []GoalUpdate `gorm:"foreignKey:GoalID;constraint:OnDelete:CASCADE" json:"updates,omitempty"`
}

// GoalUpdate records a progress contribution toward a goal
type GoalUpdate struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	GoalID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"goal_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Note      string          `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Goal
func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}
	if g.Status == "" {
		g.Status = GoalStatusActive
	}
	if g.Priority == 0 {
		g.Priority = GoalPriorityMedium
	}

	return g.Validate()
}

// BeforeUpdate hook for Goal
func (g *Goal) BeforeUpdate(tx *gorm.DB) error {
	g.UpdatedAt = time.Now()
	return g.Validate()
}

// Validate validates the goal fields
func (g *Goal) Validate() error {
	if g.Name == "" {
		return ErrGoalNameRequired
	}
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidGoalTarget
	}
	if g.Status != "" && !IsValidGoalStatus(g.Status) {
		return ErrInvalidGoalStatus
	}
	if g.Priority < GoalPriorityHigh || g.Priority > GoalPriorityLow {
		return ErrInvalidGoalPriority
	}
	return nil
}

// IsValidGoalStatus checks if a status string is valid
func IsValidGoalStatus(status string) bool {
	switch status {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusPaused:
		return true
	}
	return false
}

// BeforeCreate hook for GoalUpdate
func (u *GoalUpdate) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	return nil
}
