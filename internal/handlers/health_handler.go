package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"finplanner/internal/dto"
	"finplanner/internal/errors"
	"finplanner/internal/models"
	"finplanner/internal/repositories"
	"finplanner/internal/services"
)

// HealthHandler handles financial health scoring requests
type HealthHandler struct {
	health       services.HealthServiceInterface
	insights     services.InsightServiceInterface
	snapshotRepo repositories.SnapshotRepositoryInterface
	metrics      services.MetricsRecorderInterface
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(
	health services.HealthServiceInterface,
	insights services.InsightServiceInterface,
	snapshotRepo repositories.SnapshotRepositoryInterface,
	metrics services.MetricsRecorderInterface,
) *HealthHandler {
	return &HealthHandler{
		health:       health,
		insights:     insights,
		snapshotRepo: snapshotRepo,
		metrics:      metrics,
	}
}

// CalculateScore computes the weighted wellness score and records a monthly snapshot
func (h *HealthHandler) CalculateScore(c echo.Context) error {
	var req dto.HealthScoreRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result := h.health.CalculateHealthScore(
		req.MonthlyIncome, req.MonthlyExpenses, req.TotalSavings, req.TotalDebt, req.EmergencyFund)

	h.recordSnapshot(c, &req, result)
	h.metrics.IncrementCounter("health_score.calculated", nil)

	return c.JSON(http.StatusOK, result)
}

// ActionItems derives prioritized recommendations from a financial profile
func (h *HealthHandler) ActionItems(c echo.Context) error {
	var req dto.ActionItemsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result := h.health.CalculateHealthScore(
		req.MonthlyIncome, req.MonthlyExpenses, req.TotalSavings, req.TotalDebt, req.EmergencyFund)
	items := h.insights.ActionItems(c.Request().Context(), result)

	return c.JSON(http.StatusOK, dto.ActionItemsResponse{
		ActionItems: items,
		Count:       len(items),
	})
}

// PeerComparison relates a score to age-bracket peer averages
func (h *HealthHandler) PeerComparison(c echo.Context) error {
	scoreParam := c.QueryParam("score")
	if scoreParam == "" {
		return SendError(c, errors.ValidationRequiredField,
			errors.WithDetails("query parameter 'score' is required"))
	}

	score, err := strconv.ParseFloat(scoreParam, 64)
	if err != nil || score < 0 || score > 100 {
		return SendError(c, errors.ValidationOutOfRange,
			errors.WithDetails("score must be a number between 0 and 100"))
	}

	var age *int
	if ageParam := c.QueryParam("age"); ageParam != "" {
		parsed, err := strconv.Atoi(ageParam)
		if err != nil || parsed < 0 {
			return SendError(c, errors.ValidationInvalidFormat,
				errors.WithDetails("age must be a non-negative integer"))
		}
		age = &parsed
	}

	return c.JSON(http.StatusOK, h.health.CompareToPeers(score, age))
}

// recordSnapshot persists the score for trend reporting. Failures are logged
// and never surface to the caller.
func (h *HealthHandler) recordSnapshot(c echo.Context, req *dto.HealthScoreRequest, result *models.HealthScoreResult) {
	userID := req.UserID
	if userID == "" {
		userID = userIDFromRequest(c)
	}

	now := time.Now()
	score := result.OverallScore
	snapshot := &models.FinancialSnapshot{
		UserID:        userID,
		Month:         int(now.Month()),
		Year:          now.Year(),
		TotalIncome:   decimal.NewFromFloat(req.MonthlyIncome),
		TotalExpenses: decimal.NewFromFloat(req.MonthlyExpenses),
		TotalSavings:  decimal.NewFromFloat(req.TotalSavings),
		HealthScore:   &score,
	}

	if emergency, ok := result.Components[models.ComponentEmergencyFund]; ok {
		months := emergency.Metric
		snapshot.EmergencyFundMonths = &months
	}
	if debt, ok := result.Components[models.ComponentDebtManagement]; ok {
		ratio := debt.Metric
		snapshot.DebtToIncomeRatio = &ratio
	}
	if savings, ok := result.Components[models.ComponentSavingsRate]; ok {
		rate := savings.Metric
		snapshot.SavingsRate = &rate
	}

	if err := h.snapshotRepo.Create(snapshot); err != nil {
		log.Warn().Str("user_id", userID).Err(err).Msg("failed to record health snapshot")
	}
}
