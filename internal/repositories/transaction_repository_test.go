package repositories

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"finplanner/internal/models"
)

type TransactionRepositoryTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo TransactionRepositoryInterface
}

func TestTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositoryTestSuite))
}

func (s *TransactionRepositoryTestSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err)

	err = db.AutoMigrate(&models.Transaction{})
	require.NoError(s.T(), err)

	s.db = db
	s.repo = NewTransactionRepository(db)
}

func (s *TransactionRepositoryTestSuite) TearDownTest() {
	sqlDB, err := s.db.DB()
	if err == nil {
		sqlDB.Close()
	}
}

func (s *TransactionRepositoryTestSuite) createTestTransaction(userID string, daysAgo int) *models.Transaction {
	return &models.Transaction{
		UserID:      userID,
		Date:        time.Now().AddDate(0, 0, -daysAgo),
		Description: gofakeit.ProductName(),
		Amount:      decimal.NewFromFloat(gofakeit.Float64Range(-500, -5)).Round(2),
		Category:    models.CategoryShopping,
	}
}

func (s *TransactionRepositoryTestSuite) TestCreate() {
	txn := s.createTestTransaction("user-1", 1)

	err := s.repo.Create(txn)
	require.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, txn.ID)
	assert.False(s.T(), txn.CreatedAt.IsZero())
}

func (s *TransactionRepositoryTestSuite) TestCreate_MissingDescription() {
	txn := s.createTestTransaction("user-1", 1)
	txn.Description = ""

	err := s.repo.Create(txn)
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, models.ErrDescriptionRequired)
}

func (s *TransactionRepositoryTestSuite) TestCreateBatch() {
	batch := []models.Transaction{
		*s.createTestTransaction("user-1", 1),
		*s.createTestTransaction("user-1", 2),
		*s.createTestTransaction("user-1", 3),
	}

	err := s.repo.CreateBatch(batch)
	require.NoError(s.T(), err)

	transactions, total, err := s.repo.GetByUserID("user-1", 0, 10)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(3), total)
	assert.Len(s.T(), transactions, 3)
}

func (s *TransactionRepositoryTestSuite) TestCreateBatch_Empty() {
	assert.NoError(s.T(), s.repo.CreateBatch(nil))
}

func (s *TransactionRepositoryTestSuite) TestGetByID() {
	txn := s.createTestTransaction("user-1", 1)
	require.NoError(s.T(), s.repo.Create(txn))

	found, err := s.repo.GetByID(txn.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), txn.Description, found.Description)
	assert.True(s.T(), txn.Amount.Equal(found.Amount))
}

func (s *TransactionRepositoryTestSuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	assert.ErrorIs(s.T(), err, ErrTransactionNotFound)
}

func (s *TransactionRepositoryTestSuite) TestGetByUserID_PaginationAndOrder() {
	for day := 1; day <= 5; day++ {
		require.NoError(s.T(), s.repo.Create(s.createTestTransaction("user-1", day)))
	}
	require.NoError(s.T(), s.repo.Create(s.createTestTransaction("other-user", 1)))

	page, total, err := s.repo.GetByUserID("user-1", 0, 3)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(5), total)
	require.Len(s.T(), page, 3)

	// Newest first
	assert.True(s.T(), page[0].Date.After(page[1].Date))
	assert.True(s.T(), page[1].Date.After(page[2].Date))

	rest, _, err := s.repo.GetByUserID("user-1", 3, 3)
	require.NoError(s.T(), err)
	assert.Len(s.T(), rest, 2)
}

func (s *TransactionRepositoryTestSuite) TestGetByDateRange() {
	require.NoError(s.T(), s.repo.Create(s.createTestTransaction("user-1", 2)))
	require.NoError(s.T(), s.repo.Create(s.createTestTransaction("user-1", 40)))

	start := time.Now().AddDate(0, 0, -7)
	end := time.Now()

	transactions, err := s.repo.GetByDateRange("user-1", start, end)
	require.NoError(s.T(), err)
	assert.Len(s.T(), transactions, 1)
}

func (s *TransactionRepositoryTestSuite) TestGetByCategory() {
	txn := s.createTestTransaction("user-1", 1)
	txn.Category = models.CategoryFoodDining
	require.NoError(s.T(), s.repo.Create(txn))
	require.NoError(s.T(), s.repo.Create(s.createTestTransaction("user-1", 2)))

	transactions, total, err := s.repo.GetByCategory("user-1", models.CategoryFoodDining, 0, 10)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), total)
	require.Len(s.T(), transactions, 1)
	assert.Equal(s.T(), models.CategoryFoodDining, transactions[0].Category)
}

func (s *TransactionRepositoryTestSuite) TestUpdate() {
	txn := s.createTestTransaction("user-1", 1)
	require.NoError(s.T(), s.repo.Create(txn))

	txn.Category = models.CategoryEntertainment
	require.NoError(s.T(), s.repo.Update(txn))

	found, err := s.repo.GetByID(txn.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.CategoryEntertainment, found.Category)
}

func (s *TransactionRepositoryTestSuite) TestUpdate_NotFound() {
	txn := s.createTestTransaction("user-1", 1)
	txn.ID = uuid.New()

	err := s.repo.Update(txn)
	assert.ErrorIs(s.T(), err, ErrTransactionNotFound)
}

func (s *TransactionRepositoryTestSuite) TestDelete() {
	txn := s.createTestTransaction("user-1", 1)
	require.NoError(s.T(), s.repo.Create(txn))

	require.NoError(s.T(), s.repo.Delete(txn.ID))

	_, err := s.repo.GetByID(txn.ID)
	assert.ErrorIs(s.T(), err, ErrTransactionNotFound)
}

func (s *TransactionRepositoryTestSuite) TestDeleteByUserID() {
	require.NoError(s.T(), s.repo.Create(s.createTestTransaction("user-1", 1)))
	require.NoError(s.T(), s.repo.Create(s.createTestTransaction("user-1", 2)))
	require.NoError(s.T(), s.repo.Create(s.createTestTransaction("other-user", 1)))

	deleted, err := s.repo.DeleteByUserID("user-1")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(2), deleted)

	_, total, err := s.repo.GetByUserID("other-user", 0, 10)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), int64(1), total)
}
