package services

import (
	"math"

	"finplanner/internal/models"
)

// Component weights; they sum to exactly 1.0
const (
	weightEmergencyFund   = 0.30
	weightDebtManagement  = 0.25
	weightSavingsRate     = 0.25
	weightBudgetAdherence = 0.20
)

// neutralScore is assigned to a component whose denominator is zero or
// negative, so missing data neither rewards nor punishes the user
const neutralScore = 50.0

type healthService struct{}

// NewHealthService creates a new HealthServiceInterface instance
func NewHealthService() HealthServiceInterface {
	return &healthService{}
}

// CalculateHealthScore computes the 0-100 financial wellness score from four
// weighted components: emergency fund coverage (30%), debt management (25%),
// savings rate (25%) and budget adherence (20%). totalSavings is accepted for
// API completeness; the savings component is derived from the income/expense
// gap rather than the balance.
func (s *healthService) CalculateHealthScore(monthlyIncome, monthlyExpenses, totalSavings, totalDebt, emergencyFund float64) *models.HealthScoreResult {
	components := map[string]models.ComponentScore{
		models.ComponentEmergencyFund:   s.emergencyFundScore(monthlyExpenses, emergencyFund),
		models.ComponentDebtManagement:  s.debtScore(monthlyIncome, totalDebt),
		models.ComponentSavingsRate:     s.savingsRateScore(monthlyIncome, monthlyExpenses),
		models.ComponentBudgetAdherence: s.budgetScore(monthlyIncome, monthlyExpenses),
	}

	overall := 0.0
	for _, component := range components {
		overall += component.Score * component.Weight
	}
	overall = round1(overall)

	return &models.HealthScoreResult{
		OverallScore: overall,
		Grade:        healthGrade(overall),
		Components:   components,
		Summary:      healthSummary(overall),
	}
}

func (s *healthService) emergencyFundScore(monthlyExpenses, emergencyFund float64) models.ComponentScore {
	score := neutralScore
	monthsCovered := 0.0

	if monthlyExpenses > 0 {
		monthsCovered = emergencyFund / monthlyExpenses
		switch {
		case monthsCovered >= 6:
			score = 100
		case monthsCovered >= 3:
			score = 70 + (monthsCovered-3)*10
		default:
			score = (monthsCovered / 3) * 70
		}
	}

	return models.ComponentScore{
		Score:  round1(score),
		Weight: weightEmergencyFund,
		Metric: round1(monthsCovered),
		Target: "3-6 months of expenses",
		Status: componentStatus(score),
	}
}

func (s *healthService) debtScore(monthlyIncome, totalDebt float64) models.ComponentScore {
	score := neutralScore
	debtToIncome := 0.0

	if monthlyIncome > 0 {
		// Monthly debt payment assumed at 5% of total debt per year
		monthlyDebtPayment := totalDebt * 0.05 / 12
		debtToIncome = (monthlyDebtPayment / monthlyIncome) * 100

		switch {
		case debtToIncome <= 15:
			score = 100
		case debtToIncome <= 28:
			score = 90 - (debtToIncome-15)*2
		case debtToIncome <= 36:
			score = 70 - (debtToIncome-28)*3
		default:
			score = math.Max(0, 50-(debtToIncome-36)*2)
		}
	}

	return models.ComponentScore{
		Score:  round1(score),
		Weight: weightDebtManagement,
		Metric: round1(debtToIncome),
		Target: "<36% (excellent <15%)",
		Status: componentStatus(score),
	}
}

func (s *healthService) savingsRateScore(monthlyIncome, monthlyExpenses float64) models.ComponentScore {
	score := neutralScore
	savingsRate := 0.0

	if monthlyIncome > 0 {
		savingsRate = ((monthlyIncome - monthlyExpenses) / monthlyIncome) * 100

		switch {
		case savingsRate >= 20:
			score = 100
		case savingsRate >= 10:
			score = 70 + (savingsRate-10)*3
		case savingsRate >= 0:
			score = savingsRate * 7
		default:
			// Spending more than earning
			score = 0
		}
	}

	return models.ComponentScore{
		Score:  round1(score),
		Weight: weightSavingsRate,
		Metric: round1(savingsRate),
		Target: "20%+ of income",
		Status: componentStatus(score),
	}
}

func (s *healthService) budgetScore(monthlyIncome, monthlyExpenses float64) models.ComponentScore {
	score := neutralScore
	expenseRatio := 0.0

	if monthlyIncome > 0 {
		expenseRatio = (monthlyExpenses / monthlyIncome) * 100

		switch {
		case expenseRatio <= 70:
			score = 100
		case expenseRatio <= 80:
			score = 90 - (expenseRatio-70)*2
		case expenseRatio <= 90:
			score = 70 - (expenseRatio-80)*3
		default:
			score = math.Max(0, 50-(expenseRatio-90)*5)
		}
	}

	return models.ComponentScore{
		Score:  round1(score),
		Weight: weightBudgetAdherence,
		Metric: round1(expenseRatio),
		Target: "<80% of income",
		Status: componentStatus(score),
	}
}

// CompareToPeers relates a score to fixed age-bracket peer averages. The
// percentile is a linear projection of the difference, clamped to 1..99.
func (s *healthService) CompareToPeers(score float64, age *int) *models.PeerComparison {
	peerAvg := 65.0 // overall average when age is unknown

	if age != nil {
		switch {
		case *age < 26:
			peerAvg = 55
		case *age < 36:
			peerAvg = 62
		case *age < 46:
			peerAvg = 68
		case *age < 56:
			peerAvg = 72
		default:
			peerAvg = 75
		}
	}

	difference := score - peerAvg

	var message string
	switch {
	case difference > 10:
		message = "You're doing significantly better than your peers!"
	case difference > 0:
		message = "You're ahead of your peers. Keep it up!"
	case difference > -10:
		message = "You're close to the average. Small improvements will make a big difference."
	default:
		message = "There's opportunity to catch up to peers. Focus on key areas."
	}

	return &models.PeerComparison{
		YourScore:   score,
		PeerAverage: peerAvg,
		Difference:  round1(difference),
		Percentile:  math.Min(99, math.Max(1, 50+difference*2)),
		Message:     message,
	}
}

func componentStatus(score float64) string {
	switch {
	case score >= 80:
		return models.StatusExcellent
	case score >= 60:
		return models.StatusGood
	case score >= 40:
		return models.StatusFair
	default:
		return models.StatusNeedsImprovement
	}
}

func healthGrade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

func healthSummary(score float64) string {
	switch {
	case score >= 80:
		return "Excellent financial health! Keep up the great work."
	case score >= 60:
		return "Good financial health with room for improvement."
	case score >= 40:
		return "Fair financial health. Focus on key areas for improvement."
	default:
		return "Financial health needs attention. Let's create an improvement plan."
	}
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}
