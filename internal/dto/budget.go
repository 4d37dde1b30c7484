package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"finplanner/internal/models"
)

// Accepted transaction date layouts, tried in order
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseDate parses a transaction date in RFC3339 or YYYY-MM-DD form
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q, use RFC3339 or YYYY-MM-DD", value)
}

// TransactionInput is a single transaction submitted for classification or analysis
type TransactionInput struct {
	Date        string          `json:"date" validate:"required"`
	Description string          `json:"description" validate:"required,max=500"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Category    string          `json:"category,omitempty" validate:"omitempty,spending_category"`
	Account     string          `json:"account,omitempty" validate:"omitempty,max=100"`
}

// ToModel converts the input to a transaction model, parsing the date
func (t *TransactionInput) ToModel() (models.Transaction, error) {
	date, err := ParseDate(t.Date)
	if err != nil {
		return models.Transaction{}, err
	}
	return models.Transaction{
		Date:        date,
		Description: t.Description,
		Amount:      t.Amount,
		Category:    t.Category,
		Account:     t.Account,
	}, nil
}

// CategorizeRequest asks for classification of a transaction batch
type CategorizeRequest struct {
	Transactions []TransactionInput `json:"transactions" validate:"required,min=1,max=1000,dive"`
}

// CategorizeResponse returns the classified batch in input order
type CategorizeResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
}

// AnalyzeRequest asks for a full spending analysis of a transaction batch
type AnalyzeRequest struct {
	Transactions  []TransactionInput `json:"transactions" validate:"required,min=1,max=1000,dive"`
	Period        string             `json:"period,omitempty" validate:"omitempty,oneof=weekly monthly quarterly yearly"`
	MonthlyIncome *decimal.Decimal   `json:"monthly_income,omitempty"`
}

// AnalyzeResponse carries the analysis with generated insights and the
// 50/30/20 budget split when an income was provided
type AnalyzeResponse struct {
	Analysis              *models.SpendingAnalysis   `json:"analysis"`
	Insights              []string                   `json:"insights"`
	InsightSource         string                     `json:"insight_source"`
	BudgetRecommendations map[string]decimal.Decimal `json:"budget_recommendations,omitempty"`
}

// UploadCSVResponse summarizes an ingested CSV file
type UploadCSVResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
	SkippedRows  int                  `json:"skipped_rows"`
}
