package services

import (
	"sort"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"

	"finplanner/internal/models"
)

const (
	biWeeklyDays    = 14
	salaryHour      = 9
	billPaymentHour = 14
)

// samplePurchase pairs a realistic description with the amount range it is
// drawn from. Descriptions deliberately contain classifier keywords so a
// generated batch classifies the way a real statement would.
type samplePurchase struct {
	description string
	minAmount   float64
	maxAmount   float64
}

type sampleBill struct {
	description string
	minAmount   float64
	maxAmount   float64
	dayOfMonth  int
}

type sampleDataService struct {
	faker     *gofakeit.Faker
	purchases []samplePurchase
	bills     []sampleBill
}

// NewSampleDataService creates a generator of realistic demo transactions
func NewSampleDataService(seed uint64) SampleDataServiceInterface {
	return &sampleDataService{
		faker:     gofakeit.New(int64(seed)),
		purchases: initPurchasePool(),
		bills:     initBillPool(),
	}
}

func initPurchasePool() []samplePurchase {
	return []samplePurchase{
		{"Whole Foods Grocery", 30, 180},
		{"Trader Joes Grocery", 25, 120},
		{"Starbucks Coffee", 4, 15},
		{"Chipotle Restaurant", 10, 35},
		{"Local Cafe", 5, 20},
		{"Shell Gas Station", 25, 70},
		{"Uber Trip", 8, 45},
		{"Lyft Ride", 8, 40},
		{"Airport Parking", 10, 60},
		{"Amazon Purchase", 10, 150},
		{"Target Store", 15, 120},
		{"Walmart Purchase", 10, 90},
		{"Best Buy Electronics", 40, 400},
		{"AMC Movie Tickets", 12, 45},
		{"Concert Tickets", 40, 150},
		{"Steam Game Purchase", 5, 60},
		{"CVS Pharmacy", 8, 60},
		{"Doctor Visit Copay", 20, 80},
		{"Gym Day Pass", 10, 25},
		{"Salon Haircut", 20, 80},
		{"Online Course", 15, 200},
		{"Campus Books", 30, 150},
	}
}

func initBillPool() []sampleBill {
	return []sampleBill{
		{"Monthly Rent Payment", 1200, 2400, 1},
		{"Electric Bill", 60, 180, 5},
		{"Water Bill", 25, 70, 7},
		{"Internet Service", 50, 90, 10},
		{"Phone Bill", 40, 95, 12},
		{"Netflix Subscription", 15, 23, 15},
		{"Spotify Subscription", 10, 17, 15},
		{"Gym Membership", 25, 80, 3},
		{"Auto Insurance Premium", 90, 220, 20},
		{"Student Loan Payment", 150, 450, 25},
		{"Savings Transfer", 200, 800, 26},
	}
}

// GenerateTransactions produces a full mix of salary, bills and daily
// purchases for the given date range, ordered by date.
func (s *sampleDataService) GenerateTransactions(userID string, startDate, endDate time.Time) []models.Transaction {
	transactions := s.GenerateSalaryTransactions(userID, startDate, endDate)
	transactions = append(transactions, s.GenerateBillTransactions(userID, startDate, endDate)...)
	transactions = append(transactions, s.GenerateDailyPurchases(userID, startDate, endDate)...)

	sortTransactionsByDate(transactions)
	return transactions
}

// GenerateSalaryTransactions produces bi-weekly salary deposits
func (s *sampleDataService) GenerateSalaryTransactions(userID string, startDate, endDate time.Time) []models.Transaction {
	var transactions []models.Transaction

	salary := s.amountBetween(1800, 4200)
	employer := s.faker.Company()

	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, biWeeklyDays) {
		transactions = append(transactions, models.Transaction{
			UserID:      userID,
			Date:        time.Date(date.Year(), date.Month(), date.Day(), salaryHour, 0, 0, 0, date.Location()),
			Description: "Salary Deposit " + employer,
			Amount:      salary,
			Account:     "checking",
		})
	}

	return transactions
}

// GenerateBillTransactions produces recurring monthly bills on fixed days
func (s *sampleDataService) GenerateBillTransactions(userID string, startDate, endDate time.Time) []models.Transaction {
	var transactions []models.Transaction

	for _, bill := range s.bills {
		amount := s.amountBetween(bill.minAmount, bill.maxAmount)

		cursor := time.Date(startDate.Year(), startDate.Month(), bill.dayOfMonth, billPaymentHour, 0, 0, 0, startDate.Location())
		if cursor.Before(startDate) {
			cursor = cursor.AddDate(0, 1, 0)
		}

		for ; !cursor.After(endDate); cursor = cursor.AddDate(0, 1, 0) {
			transactions = append(transactions, models.Transaction{
				UserID:      userID,
				Date:        cursor,
				Description: bill.description,
				Amount:      amount.Neg(),
				Account:     "checking",
			})
		}
	}

	return transactions
}

// GenerateDailyPurchases produces 0-3 random purchases per day
func (s *sampleDataService) GenerateDailyPurchases(userID string, startDate, endDate time.Time) []models.Transaction {
	var transactions []models.Transaction

	for date := startDate; !date.After(endDate); date = date.AddDate(0, 0, 1) {
		for i := 0; i < s.faker.Number(0, 3); i++ {
			purchase := s.purchases[s.faker.Number(0, len(s.purchases)-1)]

			transactions = append(transactions, models.Transaction{
				UserID:      userID,
				Date:        time.Date(date.Year(), date.Month(), date.Day(), s.faker.Number(6, 23), s.faker.Number(0, 59), 0, 0, date.Location()),
				Description: purchase.description,
				Amount:      s.amountBetween(purchase.minAmount, purchase.maxAmount).Neg(),
				Account:     "checking",
			})
		}
	}

	return transactions
}

func (s *sampleDataService) amountBetween(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(s.faker.Float64Range(min, max)).Round(2)
}

func sortTransactionsByDate(transactions []models.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})
}
