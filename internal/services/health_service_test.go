package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"finplanner/internal/models"
)

type HealthServiceTestSuite struct {
	suite.Suite
	service *healthService
}

func TestHealthServiceSuite(t *testing.T) {
	suite.Run(t, new(HealthServiceTestSuite))
}

func (s *HealthServiceTestSuite) SetupTest() {
	s.service = NewHealthService().(*healthService)
}

func (s *HealthServiceTestSuite) TestCalculateHealthScore_AllComponentsPerfect() {
	// 6 months of expenses saved, no debt, 40% savings rate, 60% expense ratio
	result := s.service.CalculateHealthScore(5000, 3000, 20000, 0, 18000)

	s.Equal(100.0, result.OverallScore)
	s.Equal("A", result.Grade)
	s.Equal("Excellent financial health! Keep up the great work.", result.Summary)

	s.Require().Len(result.Components, 4)
	for name, component := range result.Components {
		s.Equal(100.0, component.Score, "component %s", name)
		s.Equal(models.StatusExcellent, component.Status)
	}
}

func (s *HealthServiceTestSuite) TestCalculateHealthScore_WeightsSumToOne() {
	result := s.service.CalculateHealthScore(4000, 3000, 5000, 10000, 6000)

	totalWeight := 0.0
	for _, component := range result.Components {
		totalWeight += component.Weight
	}
	s.InDelta(1.0, totalWeight, 1e-9)
}

func (s *HealthServiceTestSuite) TestCalculateHealthScore_MixedProfile() {
	// emergency: 8000/4000 = 2 months -> (2/3)*70 = 46.7
	// debt: 24000*0.05/12 = 100/mo -> 2% DTI -> 100
	// savings: (5000-4000)/5000 = 20% -> 100
	// budget: 4000/5000 = 80% -> 90-(80-70)*2 = 70
	result := s.service.CalculateHealthScore(5000, 4000, 0, 24000, 8000)

	emergency := result.Components[models.ComponentEmergencyFund]
	s.Equal(46.7, emergency.Score)
	s.Equal(2.0, emergency.Metric)
	s.Equal(models.StatusFair, emergency.Status)

	debt := result.Components[models.ComponentDebtManagement]
	s.Equal(100.0, debt.Score)
	s.Equal(2.0, debt.Metric)

	savings := result.Components[models.ComponentSavingsRate]
	s.Equal(100.0, savings.Score)
	s.Equal(20.0, savings.Metric)

	budget := result.Components[models.ComponentBudgetAdherence]
	s.Equal(70.0, budget.Score)
	s.Equal(80.0, budget.Metric)
	s.Equal(models.StatusGood, budget.Status)

	// 46.7*0.30 + 100*0.25 + 100*0.25 + 70*0.20 = 78.01 -> 78.0
	s.Equal(78.0, result.OverallScore)
	s.Equal("C", result.Grade)
}

func (s *HealthServiceTestSuite) TestEmergencyFundScore_Bands() {
	testCases := []struct {
		name          string
		expenses      float64
		emergencyFund float64
		expectedScore float64
	}{
		{"six months", 1000, 6000, 100},
		{"above six months", 1000, 12000, 100},
		{"exactly three months", 1000, 3000, 70},
		{"four and a half months", 1000, 4500, 85},
		{"one and a half months", 1000, 1500, 35},
		{"nothing saved", 1000, 0, 0},
		{"zero expenses guard", 0, 5000, 50},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			component := s.service.emergencyFundScore(tc.expenses, tc.emergencyFund)
			s.Equal(tc.expectedScore, component.Score)
		})
	}
}

func (s *HealthServiceTestSuite) TestDebtScore_Bands() {
	// DTI = (debt * 0.05 / 12) / income * 100
	testCases := []struct {
		name          string
		income        float64
		debt          float64
		expectedScore float64
	}{
		{"no debt", 5000, 0, 100},
		{"fifteen percent boundary", 1000, 36000, 100},        // DTI 15
		{"twenty percent", 1000, 48000, 80},                   // DTI 20 -> 90-10
		{"twenty-eight percent boundary", 1000, 67200, 64},    // DTI 28 -> 90-26
		{"thirty-six percent boundary", 1000, 86400, 46},      // DTI 36 -> 70-24
		{"forty percent", 1000, 96000, 42},                    // DTI 40 -> 50-8
		{"crushing debt floors at zero", 1000, 2400000, 0},    // DTI 1000
		{"zero income guard", 0, 10000, 50},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			component := s.service.debtScore(tc.income, tc.debt)
			s.Equal(tc.expectedScore, component.Score)
		})
	}
}

func (s *HealthServiceTestSuite) TestSavingsRateScore_Bands() {
	testCases := []struct {
		name          string
		income        float64
		expenses      float64
		expectedScore float64
	}{
		{"twenty percent rate", 5000, 4000, 100},
		{"fifteen percent rate", 10000, 8500, 85}, // 70 + 5*3
		{"ten percent rate", 1000, 900, 70},
		{"five percent rate", 1000, 950, 35}, // 5*7
		{"zero rate", 1000, 1000, 0},
		{"negative rate", 1000, 1200, 0},
		{"zero income guard", 0, 500, 50},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			component := s.service.savingsRateScore(tc.income, tc.expenses)
			s.Equal(tc.expectedScore, component.Score)
		})
	}
}

func (s *HealthServiceTestSuite) TestBudgetScore_Bands() {
	testCases := []struct {
		name          string
		income        float64
		expenses      float64
		expectedScore float64
	}{
		{"seventy percent boundary", 1000, 700, 100},
		{"seventy-five percent", 1000, 750, 80}, // 90-10
		{"eighty percent boundary", 1000, 800, 70},
		{"eighty-five percent", 1000, 850, 55}, // 70-15
		{"ninety percent boundary", 1000, 900, 40},
		{"ninety-five percent", 1000, 950, 25}, // 50-25
		{"spending everything floors at zero", 1000, 1000, 0},
		{"zero income guard", 0, 500, 50},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			component := s.service.budgetScore(tc.income, tc.expenses)
			s.Equal(tc.expectedScore, component.Score)
		})
	}
}

func (s *HealthServiceTestSuite) TestGradesAndStatuses() {
	testCases := []struct {
		score  float64
		grade  string
		status string
	}{
		{95, "A", models.StatusExcellent},
		{90, "A", models.StatusExcellent},
		{85, "B", models.StatusExcellent},
		{75, "C", models.StatusGood},
		{65, "D", models.StatusGood},
		{55, "F", models.StatusFair},
		{30, "F", models.StatusNeedsImprovement},
	}

	for _, tc := range testCases {
		s.Equal(tc.grade, healthGrade(tc.score))
		s.Equal(tc.status, componentStatus(tc.score))
	}
}

func (s *HealthServiceTestSuite) TestCompareToPeers_AgeBrackets() {
	testCases := []struct {
		name        string
		age         int
		expectedAvg float64
	}{
		{"youngest bracket", 22, 55},
		{"bracket boundary 26", 26, 62},
		{"mid thirties", 35, 62},
		{"forties", 40, 68},
		{"fifties", 50, 72},
		{"oldest bracket", 60, 75},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			age := tc.age
			comparison := s.service.CompareToPeers(70, &age)
			s.Equal(tc.expectedAvg, comparison.PeerAverage)
		})
	}
}

func (s *HealthServiceTestSuite) TestCompareToPeers_NoAge() {
	comparison := s.service.CompareToPeers(70, nil)

	s.Equal(65.0, comparison.PeerAverage)
	s.Equal(5.0, comparison.Difference)
	s.Equal(60.0, comparison.Percentile)
	s.Equal("You're ahead of your peers. Keep it up!", comparison.Message)
}

func (s *HealthServiceTestSuite) TestCompareToPeers_PercentileClamped() {
	age := 60

	high := s.service.CompareToPeers(100, &age)
	s.Equal(99.0, high.Percentile)
	s.Equal("You're doing significantly better than your peers!", high.Message)

	low := s.service.CompareToPeers(10, &age)
	s.Equal(1.0, low.Percentile)
	s.Equal("There's opportunity to catch up to peers. Focus on key areas.", low.Message)
}

func (s *HealthServiceTestSuite) TestCompareToPeers_CloseToAverage() {
	comparison := s.service.CompareToPeers(60, nil)

	s.Equal(-5.0, comparison.Difference)
	s.Equal(40.0, comparison.Percentile)
	s.Equal("You're close to the average. Small improvements will make a big difference.", comparison.Message)
}
