package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finplanner/internal/models"
	"finplanner/internal/repositories/repository_mocks"
	"finplanner/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	echo                *echo.Echo
	mockClassifier      *service_mocks.MockClassifierServiceInterface
	mockSpending        *service_mocks.MockSpendingServiceInterface
	mockInsights        *service_mocks.MockInsightServiceInterface
	mockTransactionRepo *repository_mocks.MockTransactionRepositoryInterface
	mockMetrics         *service_mocks.MockMetricsRecorderInterface
	handler             *BudgetHandler
}

func TestBudgetHandlerSuite(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}

func (s *BudgetHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.mockClassifier = service_mocks.NewMockClassifierServiceInterface(s.ctrl)
	s.mockSpending = service_mocks.NewMockSpendingServiceInterface(s.ctrl)
	s.mockInsights = service_mocks.NewMockInsightServiceInterface(s.ctrl)
	s.mockTransactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.handler = NewBudgetHandler(
		s.mockClassifier, s.mockSpending, s.mockInsights, s.mockTransactionRepo, s.mockMetrics)
}

func (s *BudgetHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BudgetHandlerTestSuite) newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *BudgetHandlerTestSuite) classifiedBatch(categories ...string) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(categories))
	for _, category := range categories {
		transactions = append(transactions, models.Transaction{
			Description: "Classified " + category,
			Amount:      decimal.NewFromFloat(-25.00),
			Category:    category,
		})
	}
	return transactions
}

// ========================================
// POST /api/budget/categorize Tests
// ========================================

func (s *BudgetHandlerTestSuite) TestCategorize_Success() {
	body := `{"transactions": [
		{"date": "2024-03-01", "description": "WHOLE FOODS MARKET", "amount": -84.20},
		{"date": "2024-03-02", "description": "NETFLIX.COM", "amount": -15.99}
	]}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/budget/categorize", body)

	classified := s.classifiedBatch(models.CategoryFoodDining, models.CategoryEntertainment)
	s.mockClassifier.EXPECT().CategorizeBatch(gomock.Any()).Return(classified)
	s.mockMetrics.EXPECT().IncrementCounter("classification.completed", nil)

	err := s.handler.Categorize(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(float64(2), response["count"])
}

func (s *BudgetHandlerTestSuite) TestCategorize_EmptyBatch() {
	c, _ := s.newJSONContext(http.MethodPost, "/api/budget/categorize", `{"transactions": []}`)

	err := s.handler.Categorize(c)

	// The validation error is mapped to a response by the global error handler
	s.Error(err)
}

func (s *BudgetHandlerTestSuite) TestCategorize_InvalidDate() {
	body := `{"transactions": [
		{"date": "03/01/2024", "description": "WHOLE FOODS MARKET", "amount": -84.20}
	]}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/budget/categorize", body)

	err := s.handler.Categorize(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_005")
}

func (s *BudgetHandlerTestSuite) TestCategorize_UnknownCategory() {
	body := `{"transactions": [
		{"date": "2024-03-01", "description": "WHOLE FOODS MARKET", "amount": -84.20, "category": "not-a-category"}
	]}`
	c, _ := s.newJSONContext(http.MethodPost, "/api/budget/categorize", body)

	err := s.handler.Categorize(c)

	s.Error(err)
}

// ========================================
// POST /api/budget/analyze Tests
// ========================================

func (s *BudgetHandlerTestSuite) TestAnalyze_DefaultPeriod() {
	body := `{"transactions": [
		{"date": "2024-03-01", "description": "WHOLE FOODS MARKET", "amount": -84.20}
	]}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/budget/analyze", body)

	classified := s.classifiedBatch(models.CategoryFoodDining)
	analysis := &models.SpendingAnalysis{
		Period:           "monthly",
		TotalSpent:       decimal.NewFromFloat(84.20),
		TransactionCount: 1,
	}

	s.mockClassifier.EXPECT().CategorizeBatch(gomock.Any()).Return(classified)
	s.mockSpending.EXPECT().Analyze(classified, "monthly").Return(analysis)
	s.mockInsights.EXPECT().
		SpendingInsights(gomock.Any(), analysis, gomock.Nil()).
		Return(&models.InsightResult{
			Insights: []string{"Groceries dominated your spending this month."},
			Source:   models.InsightSourceFallback,
		})
	s.mockMetrics.EXPECT().IncrementCounter("analysis.completed", map[string]string{"period": "monthly"})

	err := s.handler.Analyze(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotNil(response["analysis"])
	s.Equal("fallback", response["insight_source"])
	s.Nil(response["budget_recommendations"])
}

func (s *BudgetHandlerTestSuite) TestAnalyze_WithIncome_IncludesBudgetSplit() {
	body := `{"transactions": [
		{"date": "2024-03-01", "description": "SHELL GASOLINE", "amount": -45.00}
	], "period": "weekly", "monthly_income": 6000}`
	c, rec := s.newJSONContext(http.MethodPost, "/api/budget/analyze", body)

	classified := s.classifiedBatch(models.CategoryTransportation)
	analysis := &models.SpendingAnalysis{Period: "weekly", TransactionCount: 1}

	s.mockClassifier.EXPECT().CategorizeBatch(gomock.Any()).Return(classified)
	s.mockSpending.EXPECT().Analyze(classified, "weekly").Return(analysis)
	s.mockInsights.EXPECT().
		SpendingInsights(gomock.Any(), analysis, gomock.Any()).
		Return(&models.InsightResult{
			Insights: []string{"Transport was your only expense."},
			Source:   models.InsightSourceGenerated,
		})
	s.mockSpending.EXPECT().
		BudgetRecommendations(gomock.Any()).
		Return(map[string]decimal.Decimal{
			"needs":   decimal.NewFromInt(3000),
			"wants":   decimal.NewFromInt(1800),
			"savings": decimal.NewFromInt(1200),
		})
	s.mockMetrics.EXPECT().IncrementCounter("analysis.completed", map[string]string{"period": "weekly"})

	err := s.handler.Analyze(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotNil(response["budget_recommendations"])
}

func (s *BudgetHandlerTestSuite) TestAnalyze_InvalidPeriod() {
	body := `{"transactions": [
		{"date": "2024-03-01", "description": "SHELL GASOLINE", "amount": -45.00}
	], "period": "daily"}`
	c, _ := s.newJSONContext(http.MethodPost, "/api/budget/analyze", body)

	err := s.handler.Analyze(c)

	s.Error(err)
}

// ========================================
// POST /api/budget/upload-csv Tests
// ========================================

func (s *BudgetHandlerTestSuite) newCSVUploadContext(csv string) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "transactions.csv")
	s.Require().NoError(err)
	_, err = part.Write([]byte(csv))
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/budget/upload-csv", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *BudgetHandlerTestSuite) TestUploadCSV_Success() {
	csv := "date,description,amount\n" +
		"2024-03-01,WHOLE FOODS MARKET,-84.20\n" +
		"2024-03-02,PAYCHECK DEPOSIT,2500.00\n"
	c, rec := s.newCSVUploadContext(csv)

	classified := s.classifiedBatch(models.CategoryFoodDining, models.CategoryIncome)
	s.mockClassifier.EXPECT().CategorizeBatch(gomock.Any()).Return(classified)
	s.mockTransactionRepo.EXPECT().CreateBatch(gomock.Any()).Return(nil)
	s.mockMetrics.EXPECT().IncrementCounter("csv.row_ingested", nil).Times(2)

	err := s.handler.UploadCSV(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(float64(2), response["count"])
	s.Equal(float64(0), response["skipped_rows"])
}

func (s *BudgetHandlerTestSuite) TestUploadCSV_MissingFile() {
	req := httptest.NewRequest(http.MethodPost, "/api/budget/upload-csv", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	err := s.handler.UploadCSV(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_002")
}

func (s *BudgetHandlerTestSuite) TestUploadCSV_MissingColumns() {
	c, rec := s.newCSVUploadContext("date,description\n2024-03-01,WHOLE FOODS MARKET\n")

	err := s.handler.UploadCSV(c)

	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_006")
}

func (s *BudgetHandlerTestSuite) TestUploadCSV_NoParseableRows() {
	csv := "date,description,amount\n" +
		"not-a-date,WHOLE FOODS MARKET,-84.20\n" +
		"2024-03-02,NETFLIX.COM,not-a-number\n"
	c, rec := s.newCSVUploadContext(csv)

	err := s.handler.UploadCSV(c)

	s.NoError(err)
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Contains(rec.Body.String(), "ANALYSIS_001")
}

func (s *BudgetHandlerTestSuite) TestUploadCSV_RepositoryError() {
	csv := "date,description,amount\n2024-03-01,WHOLE FOODS MARKET,-84.20\n"
	c, rec := s.newCSVUploadContext(csv)

	classified := s.classifiedBatch(models.CategoryFoodDining)
	s.mockClassifier.EXPECT().CategorizeBatch(gomock.Any()).Return(classified)
	s.mockTransactionRepo.EXPECT().CreateBatch(gomock.Any()).Return(errors.New("connection reset"))

	err := s.handler.UploadCSV(c)

	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
}
