package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"finplanner/internal/models"
)

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

// snapshotRepository implements SnapshotRepositoryInterface
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *gorm.DB) SnapshotRepositoryInterface {
	return &snapshotRepository{
		db: db,
	}
}

// Create persists a monthly snapshot
func (r *snapshotRepository) Create(snapshot *models.FinancialSnapshot) error {
	if err := r.db.Create(snapshot).Error; err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	return nil
}

// GetByUserID retrieves a user's snapshots, newest first
func (r *snapshotRepository) GetByUserID(userID string, limit int) ([]models.FinancialSnapshot, error) {
	var snapshots []models.FinancialSnapshot
	query := r.db.Where("user_id = ?", userID).
		Order("year DESC, month DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to get snapshots: %w", err)
	}
	return snapshots, nil
}

// GetByMonth retrieves a user's snapshot for a specific month
func (r *snapshotRepository) GetByMonth(userID string, year, month int) (*models.FinancialSnapshot, error) {
	var snapshot models.FinancialSnapshot
	if err := r.db.Where("user_id = ? AND year = ? AND month = ?", userID, year, month).
		First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return &snapshot, nil
}

// Latest retrieves a user's most recent snapshot
func (r *snapshotRepository) Latest(userID string) (*models.FinancialSnapshot, error) {
	var snapshot models.FinancialSnapshot
	if err := r.db.Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	return &snapshot, nil
}
