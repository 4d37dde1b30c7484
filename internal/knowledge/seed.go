package knowledge

// seedDocuments returns the built-in corpus, keyed by collection. Loaded
// once at startup; the store never mutates these entries afterwards.
func seedDocuments() map[string][]Document {
	return map[string][]Document{
		CollectionFinancialKnowledge: {
			{
				ID:       "fk_001",
				Text:     "The 50/30/20 budgeting rule suggests allocating 50% of income to needs, 30% to wants, and 20% to savings and debt repayment.",
				Metadata: map[string]string{"category": "budgeting"},
			},
			{
				ID:       "fk_002",
				Text:     "An emergency fund should cover 3-6 months of essential expenses. This provides a financial safety net for unexpected events.",
				Metadata: map[string]string{"category": "savings"},
			},
			{
				ID:       "fk_003",
				Text:     "The debt avalanche method prioritizes paying off high-interest debt first, potentially saving more money on interest over time.",
				Metadata: map[string]string{"category": "debt"},
			},
			{
				ID:       "fk_004",
				Text:     "Dollar-cost averaging is an investment strategy where you invest a fixed amount regularly, regardless of market conditions, to reduce the impact of volatility.",
				Metadata: map[string]string{"category": "investing"},
			},
			{
				ID:       "fk_005",
				Text:     "A good debt-to-income ratio is generally below 36%, with no more than 28% going toward housing costs.",
				Metadata: map[string]string{"category": "debt"},
			},
			{
				ID:       "fk_006",
				Text:     "Compound interest is the addition of interest to the principal sum, allowing your money to grow exponentially over time. Starting early maximizes this effect.",
				Metadata: map[string]string{"category": "investing"},
			},
			{
				ID:       "fk_007",
				Text:     "Diversification reduces risk by spreading investments across different asset classes, sectors, and geographic regions.",
				Metadata: map[string]string{"category": "investing"},
			},
			{
				ID:       "fk_008",
				Text:     "Track every expense for at least one month to understand spending patterns and identify areas for improvement.",
				Metadata: map[string]string{"category": "budgeting"},
			},
		},
		CollectionBudgetingTips: {
			{
				ID:       "bt_001",
				Text:     "Reduce dining out expenses by meal planning and cooking at home. This can save hundreds of dollars per month.",
				Metadata: map[string]string{"category": "food"},
			},
			{
				ID:       "bt_002",
				Text:     "Cancel unused subscriptions. Review all recurring charges monthly and eliminate services you rarely use.",
				Metadata: map[string]string{"category": "subscriptions"},
			},
			{
				ID:       "bt_003",
				Text:     "Use the 24-hour rule for impulse purchases. Wait a day before buying non-essential items to avoid regret purchases.",
				Metadata: map[string]string{"category": "shopping"},
			},
			{
				ID:       "bt_004",
				Text:     "Automate savings by setting up automatic transfers to savings accounts on payday. Pay yourself first.",
				Metadata: map[string]string{"category": "savings"},
			},
			{
				ID:       "bt_005",
				Text:     "Negotiate bills like insurance, internet, and phone plans annually. Providers often offer better rates to retain customers.",
				Metadata: map[string]string{"category": "bills"},
			},
		},
		CollectionTaxRules: {
			{
				ID:       "tx_001",
				Text:     "401(k) contributions are pre-tax, reducing your taxable income. For 2024, the contribution limit is $23,000 for those under 50.",
				Metadata: map[string]string{"category": "retirement"},
			},
			{
				ID:       "tx_002",
				Text:     "Tax-loss harvesting involves selling losing investments to offset capital gains and reduce tax liability.",
				Metadata: map[string]string{"category": "investing"},
			},
			{
				ID:       "tx_003",
				Text:     "Health Savings Accounts (HSAs) offer triple tax benefits: tax-deductible contributions, tax-free growth, and tax-free withdrawals for medical expenses.",
				Metadata: map[string]string{"category": "healthcare"},
			},
		},
	}
}
