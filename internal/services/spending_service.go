package services

import (
	"sort"

	"github.com/shopspring/decimal"

	"finplanner/internal/models"
)

const topCategoryLimit = 5

type spendingService struct{}

// NewSpendingService creates a new SpendingServiceInterface instance
func NewSpendingService() SpendingServiceInterface {
	return &spendingService{}
}

// Analyze aggregates a classified batch into a spending report. Negative
// amounts are expenses and enter ByCategory as magnitudes, positive amounts
// are income. The ByCategory values always sum to TotalSpent.
func (s *spendingService) Analyze(transactions []models.Transaction, period string) *models.SpendingAnalysis {
	analysis := &models.SpendingAnalysis{
		Period:           period,
		ByCategory:       make(map[string]decimal.Decimal),
		TopCategories:    []models.CategoryTotal{},
		TransactionCount: len(transactions),
	}

	if len(transactions) == 0 {
		return analysis
	}

	// categoryOrder keeps first-appearance order so ties in the top-5
	// sort stay deterministic
	var categoryOrder []string
	totals := make(map[string]decimal.Decimal)

	totalIncome := decimal.Zero
	expenseCount := 0

	for _, txn := range transactions {
		if txn.IsExpense() {
			magnitude := txn.Amount.Abs()
			expenseCount++

			if _, seen := totals[txn.Category]; !seen {
				categoryOrder = append(categoryOrder, txn.Category)
			}
			totals[txn.Category] = totals[txn.Category].Add(magnitude)
		} else if txn.IsIncome() {
			totalIncome = totalIncome.Add(txn.Amount)
		}
	}

	// TotalSpent is the sum of the already-rounded category totals, so the
	// ByCategory invariant holds even for sub-cent input amounts
	totalSpent := decimal.Zero
	ranked := make([]models.CategoryTotal, 0, len(categoryOrder))
	for _, category := range categoryOrder {
		amount := totals[category].Round(2)
		totalSpent = totalSpent.Add(amount)
		analysis.ByCategory[category] = amount
		ranked = append(ranked, models.CategoryTotal{Category: category, Amount: amount})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount.GreaterThan(ranked[j].Amount)
	})
	if len(ranked) > topCategoryLimit {
		ranked = ranked[:topCategoryLimit]
	}

	analysis.TotalSpent = totalSpent
	analysis.TotalIncome = totalIncome.Round(2)
	analysis.TopCategories = ranked

	if expenseCount > 0 {
		analysis.AverageTransaction = totalSpent.Div(decimal.NewFromInt(int64(expenseCount))).Round(2)
	}

	return analysis
}

// BudgetRecommendations returns the 50/30/20 allocation for a monthly income
func (s *spendingService) BudgetRecommendations(monthlyIncome decimal.Decimal) map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"Needs (50%)":   monthlyIncome.Mul(decimal.NewFromFloat(0.5)).Round(2),
		"Wants (30%)":   monthlyIncome.Mul(decimal.NewFromFloat(0.3)).Round(2),
		"Savings (20%)": monthlyIncome.Mul(decimal.NewFromFloat(0.2)).Round(2),
	}
}
