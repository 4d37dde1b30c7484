package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"finplanner/internal/dto"
	"finplanner/internal/errors"
	"finplanner/internal/models"
	"finplanner/internal/repositories"
	"finplanner/internal/services"
)

// GoalHandler handles savings goal CRUD and planning requests
type GoalHandler struct {
	goals    services.GoalServiceInterface
	insights services.InsightServiceInterface
	goalRepo repositories.GoalRepositoryInterface
	metrics  services.MetricsRecorderInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(
	goals services.GoalServiceInterface,
	insights services.InsightServiceInterface,
	goalRepo repositories.GoalRepositoryInterface,
	metrics services.MetricsRecorderInterface,
) *GoalHandler {
	return &GoalHandler{
		goals:    goals,
		insights: insights,
		goalRepo: goalRepo,
		metrics:  metrics,
	}
}

// CreateGoal creates a new savings goal
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	goal := &models.Goal{
		UserID:       req.UserID,
		Name:         req.Name,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		Priority:     req.Priority,
	}
	if goal.UserID == "" {
		goal.UserID = userIDFromRequest(c)
	}
	if req.CurrentAmount != nil {
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.Deadline != nil {
		deadline, err := dto.ParseDate(*req.Deadline)
		if err != nil {
			return SendError(c, errors.GoalInvalidDeadline, errors.WithDetails(err.Error()))
		}
		goal.Deadline = &deadline
	}

	if err := h.goalRepo.Create(goal); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, goal)
}

// ListGoals lists a user's goals ordered by deadline
func (h *GoalHandler) ListGoals(c echo.Context) error {
	goals, err := h.goalRepo.GetByUserID(userIDFromRequest(c))
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListGoalsResponse{
		Goals: goals,
		Count: len(goals),
	})
}

// GetGoal retrieves a goal with its progress updates
func (h *GoalHandler) GetGoal(c echo.Context) error {
	goal, err := h.loadGoal(c)
	if goal == nil {
		return err
	}
	return c.JSON(http.StatusOK, goal)
}

// UpdateGoal updates an existing goal; omitted fields are left unchanged
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	goal, err := h.loadGoal(c)
	if goal == nil {
		return err
	}

	var req dto.UpdateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.Description != nil {
		goal.Description = *req.Description
	}
	if req.TargetAmount != nil {
		goal.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.Priority != nil {
		goal.Priority = *req.Priority
	}
	if req.Status != nil {
		goal.Status = *req.Status
	}
	if req.Deadline != nil {
		deadline, err := dto.ParseDate(*req.Deadline)
		if err != nil {
			return SendError(c, errors.GoalInvalidDeadline, errors.WithDetails(err.Error()))
		}
		goal.Deadline = &deadline
	}

	if err := h.goalRepo.Update(goal); err != nil {
		if err == repositories.ErrGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, goal)
}

// DeleteGoal removes a goal and its progress history
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.GoalInvalidID)
	}

	if err := h.goalRepo.Delete(goalID); err != nil {
		if err == repositories.ErrGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Plan derives the monthly savings plan for a goal together with generated
// recommendations
func (h *GoalHandler) Plan(c echo.Context) error {
	goal, err := h.loadGoal(c)
	if goal == nil {
		return err
	}

	var req dto.GoalPlanRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	plan := h.goals.CalculateSavingsPlan(goal.TargetAmount, goal.CurrentAmount, goal.Deadline, req.MonthlyIncome)
	recommendations := h.insights.GoalRecommendations(c.Request().Context(), goal.Name, plan, nil)

	h.metrics.IncrementCounter("goal_plan.calculated", nil)

	return c.JSON(http.StatusOK, dto.GoalPlanResponse{
		Goal:                 goal,
		Plan:                 plan,
		Recommendations:      recommendations.Insights,
		RecommendationSource: recommendations.Source,
	})
}

// Progress records a contribution and reports the resulting progress
func (h *GoalHandler) Progress(c echo.Context) error {
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.GoalInvalidID)
	}

	var req dto.GoalProgressRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Amount.Equal(decimal.Zero) {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("amount must be non-zero"))
	}

	update := &models.GoalUpdate{
		GoalID: goalID,
		Amount: req.Amount,
		Note:   req.Note,
	}
	if err := h.goalRepo.AddUpdate(update); err != nil {
		if err == repositories.ErrGoalNotFound {
			return SendError(c, errors.GoalNotFound)
		}
		return SendSystemError(c, err)
	}

	goal, err := h.goalRepo.GetByID(goalID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.GoalProgressResponse{
		Goal:     goal,
		Progress: h.goals.CalculateProgress(goal.CurrentAmount, goal.TargetAmount),
	})
}

// Prioritize orders a user's active goals by computed priority score
func (h *GoalHandler) Prioritize(c echo.Context) error {
	goals, err := h.goalRepo.GetActiveByUserID(userIDFromRequest(c))
	if err != nil {
		return SendSystemError(c, err)
	}

	prioritized := h.goals.PrioritizeGoals(goals)

	return c.JSON(http.StatusOK, dto.PrioritizeGoalsResponse{
		Goals: prioritized,
		Count: len(prioritized),
	})
}

// loadGoal resolves the :id path parameter to a stored goal, writing the
// error response itself when the lookup fails
func (h *GoalHandler) loadGoal(c echo.Context) (*models.Goal, error) {
	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return nil, SendError(c, errors.GoalInvalidID)
	}

	goal, err := h.goalRepo.GetByID(goalID)
	if err != nil {
		if err == repositories.ErrGoalNotFound {
			return nil, SendError(c, errors.GoalNotFound)
		}
		return nil, SendSystemError(c, err)
	}

	return goal, nil
}
