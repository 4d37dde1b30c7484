package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"finplanner/internal/models"
)

type SampleDataServiceTestSuite struct {
	suite.Suite
	service   SampleDataServiceInterface
	startDate time.Time
	endDate   time.Time
}

func TestSampleDataServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SampleDataServiceTestSuite))
}

func (s *SampleDataServiceTestSuite) SetupTest() {
	s.service = NewSampleDataService(42)
	s.startDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	s.endDate = s.startDate.AddDate(0, 0, 59)
}

func (s *SampleDataServiceTestSuite) TestGenerateSalaryTransactions() {
	transactions := s.service.GenerateSalaryTransactions("user-1", s.startDate, s.endDate)

	// bi-weekly cadence over 60 days starting on day zero
	s.Len(transactions, 5)

	for _, txn := range transactions {
		s.True(txn.Amount.IsPositive())
		s.True(strings.HasPrefix(txn.Description, "Salary Deposit"))
		s.Equal(9, txn.Date.Hour())
		s.Equal("user-1", txn.UserID)
	}

	// the same salary repeats every pay period
	s.True(transactions[0].Amount.Equal(transactions[1].Amount))
}

func (s *SampleDataServiceTestSuite) TestGenerateBillTransactions() {
	transactions := s.service.GenerateBillTransactions("user-1", s.startDate, s.endDate)

	s.NotEmpty(transactions)

	amountsByBill := make(map[string][]models.Transaction)
	for _, txn := range transactions {
		s.True(txn.Amount.IsNegative())
		s.Equal(14, txn.Date.Hour())
		s.False(txn.Date.Before(s.startDate))
		s.False(txn.Date.After(s.endDate))
		amountsByBill[txn.Description] = append(amountsByBill[txn.Description], txn)
	}

	// a recurring bill keeps the same amount month over month
	rent := amountsByBill["Monthly Rent Payment"]
	s.NotEmpty(rent)
	for _, txn := range rent {
		s.True(txn.Amount.Equal(rent[0].Amount))
	}
}

func (s *SampleDataServiceTestSuite) TestGenerateDailyPurchases() {
	transactions := s.service.GenerateDailyPurchases("user-1", s.startDate, s.endDate)

	perDay := make(map[string]int)
	for _, txn := range transactions {
		s.True(txn.Amount.IsNegative())
		s.GreaterOrEqual(txn.Date.Hour(), 6)
		s.Equal("checking", txn.Account)
		perDay[txn.Date.Format("2006-01-02")]++
	}

	for day, count := range perDay {
		s.LessOrEqual(count, 3, "too many purchases on %s", day)
	}
}

func (s *SampleDataServiceTestSuite) TestGenerateTransactions_SortedByDate() {
	transactions := s.service.GenerateTransactions("user-1", s.startDate, s.endDate)

	s.NotEmpty(transactions)

	income := 0
	for i, txn := range transactions {
		if i > 0 {
			s.False(txn.Date.Before(transactions[i-1].Date))
		}
		if txn.Amount.IsPositive() {
			income++
		}
	}
	s.Positive(income)
	s.Greater(len(transactions), income)
}

func (s *SampleDataServiceTestSuite) TestGeneratedBatchClassifies() {
	classifier := NewClassifierService()
	transactions := s.service.GenerateTransactions("user-1", s.startDate, s.endDate)

	for _, txn := range transactions {
		category := classifier.Categorize(txn.Description, txn.Amount)
		s.NotEqual(models.CategoryOther, category, "description %q fell through to Other", txn.Description)
	}
}

func (s *SampleDataServiceTestSuite) TestDeterministicForSameSeed() {
	a := NewSampleDataService(7).GenerateTransactions("user-1", s.startDate, s.endDate)
	b := NewSampleDataService(7).GenerateTransactions("user-1", s.startDate, s.endDate)

	s.Equal(len(a), len(b))
	for i := range a {
		s.Equal(a[i].Description, b[i].Description)
		s.True(a[i].Amount.Equal(b[i].Amount))
	}
}
