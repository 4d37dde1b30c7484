package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"finplanner/internal/models"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

// goalRepository implements GoalRepositoryInterface
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal
func (r *goalRepository) Create(goal *models.Goal) error {
	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// GetByID retrieves a goal with its progress updates
func (r *goalRepository) GetByID(id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.Preload("Updates").Where("id = ?", id).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return &goal, nil
}

// GetByUserID retrieves all goals for a user, most urgent deadline first
func (r *goalRepository) GetByUserID(userID string) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.Where("user_id = ?", userID).
		Order("deadline ASC").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}
	return goals, nil
}

// GetActiveByUserID retrieves a user's active goals
func (r *goalRepository) GetActiveByUserID(userID string) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.Where("user_id = ? AND status = ?", userID, models.GoalStatusActive).
		Order("deadline ASC").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to get active goals: %w", err)
	}
	return goals, nil
}

// Update updates a goal
func (r *goalRepository) Update(goal *models.Goal) error {
	result := r.db.Model(&models.Goal{}).
		Where("id = ?", goal.ID).
		Updates(goal)

	if result.Error != nil {
		return fmt.Errorf("failed to update goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// Delete removes a goal; its updates cascade
func (r *goalRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Goal{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete goal: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGoalNotFound
	}
	return nil
}

// AddUpdate records a progress contribution and bumps the goal's current amount
func (r *goalRepository) AddUpdate(update *models.GoalUpdate) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var goal models.Goal
		if err := tx.Where("id = ?", update.GoalID).First(&goal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGoalNotFound
			}
			return fmt.Errorf("failed to load goal: %w", err)
		}

		if err := tx.Create(update).Error; err != nil {
			return fmt.Errorf("failed to create goal update: %w", err)
		}

		goal.CurrentAmount = goal.CurrentAmount.Add(update.Amount)
		if goal.CurrentAmount.GreaterThanOrEqual(goal.TargetAmount) {
			goal.Status = models.GoalStatusCompleted
		}

		if err := tx.Save(&goal).Error; err != nil {
			return fmt.Errorf("failed to update goal amount: %w", err)
		}
		return nil
	})
}

// GetUpdates retrieves the progress history for a goal, newest first
func (r *goalRepository) GetUpdates(goalID uuid.UUID) ([]models.GoalUpdate, error) {
	var updates []models.GoalUpdate
	if err := r.db.Where("goal_id = ?", goalID).
		Order("created_at DESC").
		Find(&updates).Error; err != nil {
		return nil, fmt.Errorf("failed to get goal updates: %w", err)
	}
	return updates, nil
}
