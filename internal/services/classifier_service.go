package services

import (
	"strings"

	"github.com/shopspring/decimal"

	"finplanner/internal/models"
)

// incomeThreshold is the amount above which an unmatched positive
// transaction is assumed to be income
var incomeThreshold = decimal.NewFromInt(100)

type classifierService struct {
	keywordTable []models.CategoryKeywords
}

// NewClassifierService creates a new ClassifierServiceInterface instance
func NewClassifierService() ClassifierServiceInterface {
	return &classifierService{
		keywordTable: models.KeywordTable(),
	}
}

// Categorize classifies a transaction by scanning the ordered keyword table.
// The first category whose keyword appears in the lower-cased description
// wins. Unmatched transactions above the income threshold are classified as
// Income, everything else as Other.
func (s *classifierService) Categorize(description string, amount decimal.Decimal) string {
	normalized := strings.ToLower(description)

	for _, entry := range s.keywordTable {
		for _, keyword := range entry.Keywords {
			if strings.Contains(normalized, keyword) {
				return entry.Category
			}
		}
	}

	if amount.GreaterThan(incomeThreshold) {
		return models.CategoryIncome
	}

	return models.CategoryOther
}

// CategorizeBatch classifies every transaction in the batch. The result is a
// copy in input order; the input slice is left untouched.
func (s *classifierService) CategorizeBatch(transactions []models.Transaction) []models.Transaction {
	classified := make([]models.Transaction, len(transactions))

	for i, txn := range transactions {
		txn.Category = s.Categorize(txn.Description, txn.Amount)
		classified[i] = txn
	}

	return classified
}
