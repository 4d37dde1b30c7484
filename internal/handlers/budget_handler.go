package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"finplanner/internal/dto"
	"finplanner/internal/errors"
	"finplanner/internal/ingest"
	"finplanner/internal/models"
	"finplanner/internal/repositories"
	"finplanner/internal/services"
)

const defaultAnalysisPeriod = "monthly"

// BudgetHandler handles transaction upload, classification and analysis requests
type BudgetHandler struct {
	classifier      services.ClassifierServiceInterface
	spending        services.SpendingServiceInterface
	insights        services.InsightServiceInterface
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         services.MetricsRecorderInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(
	classifier services.ClassifierServiceInterface,
	spending services.SpendingServiceInterface,
	insights services.InsightServiceInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics services.MetricsRecorderInterface,
) *BudgetHandler {
	return &BudgetHandler{
		classifier:      classifier,
		spending:        spending,
		insights:        insights,
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// UploadCSV ingests a multipart CSV file, classifies the rows and persists them
func (h *BudgetHandler) UploadCSV(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return SendError(c, errors.ValidationRequiredField,
			errors.WithDetails("multipart field 'file' is required"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return SendSystemError(c, err)
	}
	defer file.Close()

	result, err := ingest.ParseCSV(file)
	if err != nil {
		return SendError(c, errors.ValidationInvalidCSV, errors.WithDetails(err.Error()))
	}
	if len(result.Transactions) == 0 {
		return SendError(c, errors.AnalysisEmptyBatch,
			errors.WithDetails("no parseable transaction rows in file"))
	}

	userID := userIDFromRequest(c)
	classified := h.classifier.CategorizeBatch(result.Transactions)
	for i := range classified {
		classified[i].UserID = userID
	}

	if err := h.transactionRepo.CreateBatch(classified); err != nil {
		return SendSystemError(c, err)
	}

	for range classified {
		h.metrics.IncrementCounter("csv.row_ingested", nil)
	}

	log.Info().
		Str("user_id", userID).
		Str("client_ip", getClientIP(c)).
		Int("rows", len(classified)).
		Int("skipped", result.SkippedRows).
		Msg("csv upload ingested")

	return c.JSON(http.StatusOK, dto.UploadCSVResponse{
		Transactions: classified,
		Count:        len(classified),
		SkippedRows:  result.SkippedRows,
	})
}

// Categorize classifies a transaction batch without persisting it
func (h *BudgetHandler) Categorize(c echo.Context) error {
	var req dto.CategorizeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transactions, err := toModels(req.Transactions)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	classified := h.classifier.CategorizeBatch(transactions)
	h.metrics.IncrementCounter("classification.completed", nil)

	return c.JSON(http.StatusOK, dto.CategorizeResponse{
		Transactions: classified,
		Count:        len(classified),
	})
}

// Analyze classifies and aggregates a batch, generates spending insights and,
// when an income is supplied, the 50/30/20 budget split
func (h *BudgetHandler) Analyze(c echo.Context) error {
	var req dto.AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transactions, err := toModels(req.Transactions)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	period := req.Period
	if period == "" {
		period = defaultAnalysisPeriod
	}

	classified := h.classifier.CategorizeBatch(transactions)
	analysis := h.spending.Analyze(classified, period)
	insightResult := h.insights.SpendingInsights(c.Request().Context(), analysis, req.MonthlyIncome)

	response := dto.AnalyzeResponse{
		Analysis:      analysis,
		Insights:      insightResult.Insights,
		InsightSource: insightResult.Source,
	}
	if req.MonthlyIncome != nil {
		response.BudgetRecommendations = h.spending.BudgetRecommendations(*req.MonthlyIncome)
	}

	h.metrics.IncrementCounter("analysis.completed", map[string]string{"period": period})

	return c.JSON(http.StatusOK, response)
}

func toModels(inputs []dto.TransactionInput) ([]models.Transaction, error) {
	transactions := make([]models.Transaction, 0, len(inputs))
	for i := range inputs {
		txn, err := inputs[i].ToModel()
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}
	return transactions, nil
}
