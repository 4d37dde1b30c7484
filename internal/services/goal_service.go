package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"finplanner/internal/models"
)

const (
	// defaultPlanMonths is assumed when a goal has no deadline
	defaultPlanMonths = 12

	// milestoneStepMonths spaces checkpoints quarterly
	milestoneStepMonths = 3
)

type goalService struct {
	// now is swappable for deterministic tests
	now func() time.Time
}

// NewGoalService creates a new GoalServiceInterface instance
func NewGoalService() GoalServiceInterface {
	return &goalService{now: time.Now}
}

// CalculateSavingsPlan derives the monthly amount needed to reach the target
// by the deadline, quarterly milestones and a feasibility verdict against the
// user's income. A plan demanding over 50% of income is infeasible; over 30%
// is feasible but flagged.
func (s *goalService) CalculateSavingsPlan(targetAmount, currentAmount decimal.Decimal, deadline *time.Time, monthlyIncome *decimal.Decimal) *models.SavingsPlan {
	now := s.now()
	remaining := targetAmount.Sub(currentAmount)

	monthsRemaining := float64(defaultPlanMonths)
	if deadline != nil {
		days := deadline.Sub(now).Hours() / 24
		if days/30 > 1 {
			monthsRemaining = days / 30
		} else {
			monthsRemaining = 1
		}
	}

	monthlyNeeded := remaining.Div(decimal.NewFromFloat(monthsRemaining)).Round(2)

	feasible := true
	feasibilityMessage := "Goal is achievable with consistent saving."
	var percentageOfIncome *float64

	if monthlyIncome != nil && monthlyIncome.IsPositive() {
		pct, _ := monthlyNeeded.Div(*monthlyIncome).Mul(decimal.NewFromInt(100)).Float64()

		if pct > 50 {
			feasible = false
			feasibilityMessage = fmt.Sprintf("This goal requires %.1f%% of your income, which may not be sustainable.", pct)
		} else if pct > 30 {
			feasibilityMessage = fmt.Sprintf("This goal requires %.1f%% of your income. Consider extending the deadline.", pct)
		}

		rounded := round1(pct)
		percentageOfIncome = &rounded
	}

	milestones := []models.Milestone{}
	for i := 1; i <= int(monthsRemaining); i += milestoneStepMonths {
		milestoneDate := now.AddDate(0, 0, i*30)
		if deadline != nil && milestoneDate.After(*deadline) {
			continue
		}

		milestones = append(milestones, models.Milestone{
			Date:          milestoneDate.Format("2006-01-02"),
			TargetAmount:  currentAmount.Add(monthlyNeeded.Mul(decimal.NewFromInt(int64(i)))).Round(2),
			MonthsFromNow: i,
		})
	}

	return &models.SavingsPlan{
		RemainingAmount:      remaining.Round(2),
		MonthsRemaining:      round1(monthsRemaining),
		MonthlySavingsNeeded: monthlyNeeded,
		Feasible:             feasible,
		FeasibilityMessage:   feasibilityMessage,
		PercentageOfIncome:   percentageOfIncome,
		Milestones:           milestones,
	}
}

// CalculateProgress summarizes how far along a goal is
func (s *goalService) CalculateProgress(currentAmount, targetAmount decimal.Decimal) *models.GoalProgress {
	percentage := 0.0
	if targetAmount.IsPositive() {
		percentage, _ = currentAmount.Div(targetAmount).Mul(decimal.NewFromInt(100)).Float64()
	}

	var status, message string
	switch {
	case percentage >= 100:
		status = models.ProgressCompleted
		message = "Goal achieved!"
	case percentage >= 75:
		status = models.ProgressOnTrack
		message = "Great progress! You're almost there."
	case percentage >= 50:
		status = models.ProgressOnTrack
		message = "You're halfway to your goal!"
	case percentage >= 25:
		status = models.ProgressNeedsAttention
		message = "Keep going, you're making progress."
	default:
		status = models.ProgressNeedsAttention
		message = "Consider increasing your monthly savings to stay on track."
	}

	return &models.GoalProgress{
		Percentage: round1(percentage),
		Remaining:  targetAmount.Sub(currentAmount).Round(2),
		Status:     status,
		Message:    message,
	}
}

// PrioritizeGoals scores each goal on deadline urgency, user priority and
// completion progress, then orders them by score descending. The sort is
// stable, so equally scored goals keep their input order.
func (s *goalService) PrioritizeGoals(goals []models.Goal) []models.PrioritizedGoal {
	now := s.now()
	prioritized := make([]models.PrioritizedGoal, 0, len(goals))

	for _, goal := range goals {
		score := 0

		if goal.Deadline != nil {
			daysUntil := int(goal.Deadline.Sub(now).Hours() / 24)
			switch {
			case daysUntil < 90:
				score += 3
			case daysUntil < 180:
				score += 2
			default:
				score += 1
			}
		}

		switch goal.Priority {
		case models.GoalPriorityHigh:
			score += 3
		case models.GoalPriorityMedium:
			score += 2
		default:
			score += 1
		}

		if goal.TargetAmount.IsPositive() {
			percentage, _ := goal.CurrentAmount.Div(goal.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
			if percentage > 75 {
				score += 2
			} else if percentage > 50 {
				score += 1
			}
		}

		prioritized = append(prioritized, models.PrioritizedGoal{
			GoalID:        goal.ID,
			Name:          goal.Name,
			TargetAmount:  goal.TargetAmount,
			CurrentAmount: goal.CurrentAmount,
			PriorityScore: score,
		})
	}

	sort.SliceStable(prioritized, func(i, j int) bool {
		return prioritized[i].PriorityScore > prioritized[j].PriorityScore
	})

	return prioritized
}
