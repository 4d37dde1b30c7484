package models

import "github.com/shopspring/decimal"

// Transaction categories in classification precedence order
const (
	CategoryHousing        = "Housing"
	CategoryTransportation = "Transportation"
	CategoryFoodDining     = "Food & Dining"
	CategoryUtilities      = "Utilities"
	CategoryHealthcare     = "Healthcare"
	CategoryEntertainment  = "Entertainment"
	CategoryShopping       = "Shopping"
	CategoryPersonalCare   = "Personal Care"
	CategoryEducation      = "Education"
	CategorySubscriptions  = "Subscriptions"
	CategoryInsurance      = "Insurance"
	CategoryDebtPayment    = "Debt Payment"
	CategorySavings        = "Savings"
	CategoryIncome         = "Income"
	CategoryOther          = "Other"
)

// CategoryKeywords pairs a category with its matching keywords.
// The slice below is iterated in declaration order during classification,
// so an earlier category always wins a keyword tie.
type CategoryKeywords struct {
	Category string
	Keywords []string
}

// KeywordTable returns the ordered category keyword table. The order is
// part of the classification contract: first matching category wins.
func KeywordTable() []CategoryKeywords {
	return []CategoryKeywords{
		{CategoryHousing, []string{"rent", "mortgage", "property tax", "hoa", "home insurance"}},
		{CategoryTransportation, []string{"gas", "fuel", "uber", "lyft", "car payment", "auto insurance", "parking"}},
		{CategoryFoodDining, []string{"grocery", "restaurant", "cafe", "starbucks", "food", "dining"}},
		{CategoryUtilities, []string{"electric", "water", "internet", "phone", "gas bill"}},
		{CategoryHealthcare, []string{"doctor", "hospital", "pharmacy", "medical", "health insurance"}},
		{CategoryEntertainment, []string{"netflix", "spotify", "movie", "concert", "game"}},
		{CategoryShopping, []string{"amazon", "target", "walmart", "clothing", "electronics"}},
		{CategoryPersonalCare, []string{"gym", "salon", "haircut", "spa"}},
		{CategoryEducation, []string{"tuition", "books", "course"}},
		{CategorySubscriptions, []string{"subscription", "membership"}},
		{CategoryInsurance, []string{"insurance"}},
		{CategoryDebtPayment, []string{"loan", "credit card payment"}},
		{CategorySavings, []string{"savings", "investment"}},
		{CategoryIncome, []string{"salary", "paycheck", "income", "deposit"}},
		{CategoryOther, nil},
	}
}

// AllCategories returns all valid category names in precedence order
func AllCategories() []string {
	table := KeywordTable()
	categories := make([]string, 0, len(table))
	for _, entry := range table {
		categories = append(categories, entry.Category)
	}
	return categories
}

// IsValidCategory checks if a category name is part of the vocabulary
func IsValidCategory(category string) bool {
	for _, valid := range AllCategories() {
		if category == valid {
			return true
		}
	}
	return false
}

// CategoryTotal is a category paired with its aggregated expense amount
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}
