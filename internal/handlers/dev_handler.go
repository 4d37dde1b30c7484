package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"finplanner/internal/repositories"
	"finplanner/internal/services"
)

const (
	defaultSampleDays = 30
	maxSampleDays     = 365
)

// DevHandler serves development-only endpoints for seeding and clearing
// demo transaction data
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	sampleData      services.SampleDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	sampleData services.SampleDataServiceInterface,
) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		sampleData:      sampleData,
	}
}

// GenerateSampleData seeds a realistic transaction history for a user
func (h *DevHandler) GenerateSampleData(c echo.Context) error {
	days := getIntParam(c, "days", defaultSampleDays)
	if days < 1 {
		days = 1
	}
	if days > maxSampleDays {
		days = maxSampleDays
	}

	userID := userIDFromRequest(c)
	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -days)

	transactions := h.sampleData.GenerateTransactions(userID, startDate, endDate)

	if err := h.transactionRepo.CreateBatch(transactions); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"transactions_created": len(transactions),
		"user_id":              userID,
		"date_range": map[string]string{
			"start": startDate.Format(time.RFC3339),
			"end":   endDate.Format(time.RFC3339),
		},
	})
}

// ClearSampleData removes every transaction belonging to a user
func (h *DevHandler) ClearSampleData(c echo.Context) error {
	userID := userIDFromRequest(c)

	deleted, err := h.transactionRepo.DeleteByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"transactions_deleted": deleted,
		"user_id":              userID,
	})
}
