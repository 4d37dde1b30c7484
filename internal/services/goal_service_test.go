package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"finplanner/internal/models"
)

type GoalServiceTestSuite struct {
	suite.Suite
	service *goalService
	now     time.Time
}

func TestGoalServiceSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}

func (s *GoalServiceTestSuite) SetupTest() {
	s.now = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	s.service = &goalService{now: func() time.Time { return s.now }}
}

func (s *GoalServiceTestSuite) money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func (s *GoalServiceTestSuite) TestCalculateSavingsPlan_WithDeadline() {
	deadline := s.now.AddDate(0, 0, 300)

	plan := s.service.CalculateSavingsPlan(s.money("12000"), s.money("2000"), &deadline, nil)

	s.True(plan.RemainingAmount.Equal(s.money("10000")))
	s.Equal(10.0, plan.MonthsRemaining)
	s.True(plan.MonthlySavingsNeeded.Equal(s.money("1000.00")))
	s.True(plan.Feasible)
	s.Equal("Goal is achievable with consistent saving.", plan.FeasibilityMessage)
	s.Nil(plan.PercentageOfIncome)

	// Quarterly checkpoints at months 1, 4, 7 and 10
	s.Require().Len(plan.Milestones, 4)
	s.Equal(1, plan.Milestones[0].MonthsFromNow)
	s.Equal(4, plan.Milestones[1].MonthsFromNow)
	s.Equal(7, plan.Milestones[2].MonthsFromNow)
	s.Equal(10, plan.Milestones[3].MonthsFromNow)

	s.True(plan.Milestones[0].TargetAmount.Equal(s.money("3000.00")))
	s.True(plan.Milestones[3].TargetAmount.Equal(s.money("12000.00")))

	s.Equal(s.now.AddDate(0, 0, 30).Format("2006-01-02"), plan.Milestones[0].Date)
	s.Equal(s.now.AddDate(0, 0, 300).Format("2006-01-02"), plan.Milestones[3].Date)
}

func (s *GoalServiceTestSuite) TestCalculateSavingsPlan_NoDeadlineDefaultsToYear() {
	plan := s.service.CalculateSavingsPlan(s.money("6000"), s.money("0"), nil, nil)

	s.Equal(12.0, plan.MonthsRemaining)
	s.True(plan.MonthlySavingsNeeded.Equal(s.money("500.00")))
	s.Require().Len(plan.Milestones, 4)
	s.Equal([]int{1, 4, 7, 10}, []int{
		plan.Milestones[0].MonthsFromNow,
		plan.Milestones[1].MonthsFromNow,
		plan.Milestones[2].MonthsFromNow,
		plan.Milestones[3].MonthsFromNow,
	})
}

func (s *GoalServiceTestSuite) TestCalculateSavingsPlan_PastDeadlineClampsToOneMonth() {
	deadline := s.now.AddDate(0, 0, -10)

	plan := s.service.CalculateSavingsPlan(s.money("1000"), s.money("0"), &deadline, nil)

	s.Equal(1.0, plan.MonthsRemaining)
	s.True(plan.MonthlySavingsNeeded.Equal(s.money("1000.00")))
	// The first checkpoint already falls past the deadline
	s.Empty(plan.Milestones)
}

func (s *GoalServiceTestSuite) TestCalculateSavingsPlan_FeasibilityBands() {
	deadline := s.now.AddDate(0, 0, 300) // 10 months, $1000/mo needed

	s.Run("comfortable", func() {
		income := s.money("5000")
		plan := s.service.CalculateSavingsPlan(s.money("12000"), s.money("2000"), &deadline, &income)

		s.True(plan.Feasible)
		s.Equal("Goal is achievable with consistent saving.", plan.FeasibilityMessage)
		s.Require().NotNil(plan.PercentageOfIncome)
		s.Equal(20.0, *plan.PercentageOfIncome)
	})

	s.Run("stretched", func() {
		income := s.money("2500")
		plan := s.service.CalculateSavingsPlan(s.money("12000"), s.money("2000"), &deadline, &income)

		s.True(plan.Feasible)
		s.Equal("This goal requires 40.0% of your income. Consider extending the deadline.", plan.FeasibilityMessage)
		s.Require().NotNil(plan.PercentageOfIncome)
		s.Equal(40.0, *plan.PercentageOfIncome)
	})

	s.Run("infeasible", func() {
		income := s.money("1600")
		plan := s.service.CalculateSavingsPlan(s.money("12000"), s.money("2000"), &deadline, &income)

		s.False(plan.Feasible)
		s.Equal("This goal requires 62.5% of your income, which may not be sustainable.", plan.FeasibilityMessage)
		s.Require().NotNil(plan.PercentageOfIncome)
		s.Equal(62.5, *plan.PercentageOfIncome)
	})
}

func (s *GoalServiceTestSuite) TestCalculateSavingsPlan_GoalAlreadyReached() {
	deadline := s.now.AddDate(0, 0, 300)

	plan := s.service.CalculateSavingsPlan(s.money("5000"), s.money("6000"), &deadline, nil)

	s.True(plan.RemainingAmount.Equal(s.money("-1000.00")))
	s.True(plan.MonthlySavingsNeeded.Equal(s.money("-100.00")))
	s.True(plan.Feasible)
}

func (s *GoalServiceTestSuite) TestCalculateProgress_Bands() {
	testCases := []struct {
		name            string
		current, target string
		percentage      float64
		status          string
	}{
		{"completed", "10000", "10000", 100, models.ProgressCompleted},
		{"over target", "11000", "10000", 110, models.ProgressCompleted},
		{"almost there", "8000", "10000", 80, models.ProgressOnTrack},
		{"halfway", "5000", "10000", 50, models.ProgressOnTrack},
		{"a quarter in", "2500", "10000", 25, models.ProgressNeedsAttention},
		{"barely started", "1000", "10000", 10, models.ProgressNeedsAttention},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			progress := s.service.CalculateProgress(s.money(tc.current), s.money(tc.target))
			s.Equal(tc.percentage, progress.Percentage)
			s.Equal(tc.status, progress.Status)
			s.NotEmpty(progress.Message)
		})
	}
}

func (s *GoalServiceTestSuite) TestCalculateProgress_ZeroTarget() {
	progress := s.service.CalculateProgress(s.money("500"), s.money("0"))

	s.Equal(0.0, progress.Percentage)
	s.Equal(models.ProgressNeedsAttention, progress.Status)
}

func (s *GoalServiceTestSuite) TestCalculateProgress_Remaining() {
	progress := s.service.CalculateProgress(s.money("2500.50"), s.money("10000"))
	s.True(progress.Remaining.Equal(s.money("7499.50")))
}

func (s *GoalServiceTestSuite) TestPrioritizeGoals_Scoring() {
	urgent := s.now.AddDate(0, 0, 30)
	medium := s.now.AddDate(0, 0, 120)
	distant := s.now.AddDate(0, 0, 400)

	goals := []models.Goal{
		{
			ID:            uuid.New(),
			Name:          "Vacation",
			TargetAmount:  s.money("3000"),
			CurrentAmount: s.money("300"),
			Deadline:      &distant,
			Priority:      models.GoalPriorityLow,
		},
		{
			ID:            uuid.New(),
			Name:          "Emergency fund",
			TargetAmount:  s.money("10000"),
			CurrentAmount: s.money("8000"),
			Deadline:      &urgent,
			Priority:      models.GoalPriorityHigh,
		},
		{
			ID:            uuid.New(),
			Name:          "New car",
			TargetAmount:  s.money("20000"),
			CurrentAmount: s.money("11000"),
			Deadline:      &medium,
			Priority:      models.GoalPriorityMedium,
		},
	}

	prioritized := s.service.PrioritizeGoals(goals)

	s.Require().Len(prioritized, 3)

	// urgency 3 + priority 3 + progress 2 (80%)
	s.Equal("Emergency fund", prioritized[0].Name)
	s.Equal(8, prioritized[0].PriorityScore)

	// urgency 2 + priority 2 + progress 1 (55%)
	s.Equal("New car", prioritized[1].Name)
	s.Equal(5, prioritized[1].PriorityScore)

	// urgency 1 + priority 1 + no progress bonus (10%)
	s.Equal("Vacation", prioritized[2].Name)
	s.Equal(2, prioritized[2].PriorityScore)
}

func (s *GoalServiceTestSuite) TestPrioritizeGoals_NoDeadlineSkipsUrgency() {
	goals := []models.Goal{
		{
			ID:           uuid.New(),
			Name:         "Someday fund",
			TargetAmount: s.money("5000"),
			Priority:     models.GoalPriorityMedium,
		},
	}

	prioritized := s.service.PrioritizeGoals(goals)

	s.Require().Len(prioritized, 1)
	// priority 2 only, no urgency or progress points
	s.Equal(2, prioritized[0].PriorityScore)
}

func (s *GoalServiceTestSuite) TestPrioritizeGoals_StableOnTies() {
	goals := []models.Goal{
		{ID: uuid.New(), Name: "First", TargetAmount: s.money("1000"), Priority: models.GoalPriorityMedium},
		{ID: uuid.New(), Name: "Second", TargetAmount: s.money("1000"), Priority: models.GoalPriorityMedium},
		{ID: uuid.New(), Name: "Third", TargetAmount: s.money("1000"), Priority: models.GoalPriorityMedium},
	}

	prioritized := s.service.PrioritizeGoals(goals)

	s.Equal("First", prioritized[0].Name)
	s.Equal("Second", prioritized[1].Name)
	s.Equal("Third", prioritized[2].Name)
}

func (s *GoalServiceTestSuite) TestPrioritizeGoals_Empty() {
	s.Empty(s.service.PrioritizeGoals(nil))
}
