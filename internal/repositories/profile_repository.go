package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"finplanner/internal/models"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
)

// profileRepository implements ProfileRepositoryInterface
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepositoryInterface {
	return &profileRepository{
		db: db,
	}
}

// GetByUserID retrieves a user's profile
func (r *profileRepository) GetByUserID(userID string) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// Upsert creates the profile or updates the existing row for the user
func (r *profileRepository) Upsert(profile *models.UserProfile) error {
	if err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "age", "monthly_income", "risk_tolerance",
			"preferred_currency", "notification_enabled", "updated_at",
		}),
	}).Create(profile).Error; err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

// Delete removes a user's profile
func (r *profileRepository) Delete(userID string) error {
	result := r.db.Delete(&models.UserProfile{}, "user_id = ?", userID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}
