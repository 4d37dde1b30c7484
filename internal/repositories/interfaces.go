package repositories

import (
	"time"

	"github.com/google/uuid"

	"finplanner/internal/models"
)

// TransactionRepositoryInterface defines the contract for transaction persistence
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID string, offset, limit int) ([]models.Transaction, int64, error)
	GetByDateRange(userID string, startDate, endDate time.Time) ([]models.Transaction, error)
	GetByCategory(userID, category string, offset, limit int) ([]models.Transaction, int64, error)
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
	DeleteByUserID(userID string) (int64, error)
}

// GoalRepositoryInterface defines the contract for goal persistence
type GoalRepositoryInterface interface {
	Create(goal *models.Goal) error
	GetByID(id uuid.UUID) (*models.Goal, error)
	GetByUserID(userID string) ([]models.Goal, error)
	GetActiveByUserID(userID string) ([]models.Goal, error)
	Update(goal *models.Goal) error
	Delete(id uuid.UUID) error
	AddUpdate(update *models.GoalUpdate) error
	GetUpdates(goalID uuid.UUID) ([]models.GoalUpdate, error)
}

// ProfileRepositoryInterface defines the contract for user profile persistence
type ProfileRepositoryInterface interface {
	GetByUserID(userID string) (*models.UserProfile, error)
	Upsert(profile *models.UserProfile) error
	Delete(userID string) error
}

// SnapshotRepositoryInterface defines the contract for financial snapshot persistence
type SnapshotRepositoryInterface interface {
	Create(snapshot *models.FinancialSnapshot) error
	GetByUserID(userID string, limit int) ([]models.FinancialSnapshot, error)
	GetByMonth(userID string, year, month int) (*models.FinancialSnapshot, error)
	Latest(userID string) (*models.FinancialSnapshot, error)
}
