package models

import "github.com/shopspring/decimal"

// SpendingAnalysis is the aggregated view of a classified transaction batch.
// ByCategory only contains categories that appear among expenses, and the
// sum of its values equals TotalSpent.
type SpendingAnalysis struct {
	Period             string                     `json:"period"`
	TotalSpent         decimal.Decimal            `json:"total_spent"`
	TotalIncome        decimal.Decimal            `json:"total_income"`
	ByCategory         map[string]decimal.Decimal `json:"by_category"`
	TopCategories      []CategoryTotal            `json:"top_categories"`
	TransactionCount   int                        `json:"transaction_count"`
	AverageTransaction decimal.Decimal            `json:"average_transaction"`
}

// TopCategory returns the highest-spend category, or empty string when the
// batch had no expenses.
func (a *SpendingAnalysis) TopCategory() string {
	if len(a.TopCategories) == 0 {
		return ""
	}
	return a.TopCategories[0].Category
}
