package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"finplanner/internal/knowledge"
	"finplanner/internal/models"
)

// ClassifierServiceInterface defines the contract for transaction classification
type ClassifierServiceInterface interface {
	// Categorize returns the category for a single transaction
	Categorize(description string, amount decimal.Decimal) string

	// CategorizeBatch classifies a batch, preserving order. The input
	// slice is not modified.
	CategorizeBatch(transactions []models.Transaction) []models.Transaction
}

// SpendingServiceInterface defines spending analysis operations
type SpendingServiceInterface interface {
	// Analyze aggregates a classified transaction batch into a spending report
	Analyze(transactions []models.Transaction, period string) *models.SpendingAnalysis

	// BudgetRecommendations returns a 50/30/20 allocation for the given income
	BudgetRecommendations(monthlyIncome decimal.Decimal) map[string]decimal.Decimal
}

// HealthServiceInterface defines financial health scoring operations
type HealthServiceInterface interface {
	// CalculateHealthScore computes the weighted 0-100 wellness score
	CalculateHealthScore(monthlyIncome, monthlyExpenses, totalSavings, totalDebt, emergencyFund float64) *models.HealthScoreResult

	// CompareToPeers relates a score to age-bracket peer averages
	CompareToPeers(score float64, age *int) *models.PeerComparison
}

// GoalServiceInterface defines savings goal planning operations
type GoalServiceInterface interface {
	// CalculateSavingsPlan derives the monthly savings plan for a goal
	CalculateSavingsPlan(targetAmount, currentAmount decimal.Decimal, deadline *time.Time, monthlyIncome *decimal.Decimal) *models.SavingsPlan

	// CalculateProgress summarizes progress toward a target
	CalculateProgress(currentAmount, targetAmount decimal.Decimal) *models.GoalProgress

	// PrioritizeGoals scores and orders goals by urgency, importance and progress
	PrioritizeGoals(goals []models.Goal) []models.PrioritizedGoal
}

// InsightServiceInterface defines the retrieval-augmented insight operations.
// Every method degrades to deterministic fallback content when a collaborator
// fails; none of them surface collaborator errors to the caller.
type InsightServiceInterface interface {
	SpendingInsights(ctx context.Context, analysis *models.SpendingAnalysis, monthlyIncome *decimal.Decimal) *models.InsightResult
	ActionItems(ctx context.Context, health *models.HealthScoreResult) []models.ActionItem
	GoalRecommendations(ctx context.Context, goalName string, plan *models.SavingsPlan, spending map[string]decimal.Decimal) *models.InsightResult
	Chat(ctx context.Context, message string, history []models.ChatMessage) *models.ChatAnswer
}

// KnowledgeSearcherInterface is the retrieval contract the insight service
// depends on, satisfied by *knowledge.Store
type KnowledgeSearcherInterface interface {
	Search(ctx context.Context, query, collection string, topK int) ([]knowledge.Snippet, error)
	SearchAll(ctx context.Context, query string, perCollection int) (map[string][]knowledge.Snippet, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// SampleDataServiceInterface generates realistic transaction data for demos and tests
type SampleDataServiceInterface interface {
	GenerateTransactions(userID string, startDate, endDate time.Time) []models.Transaction
	GenerateSalaryTransactions(userID string, startDate, endDate time.Time) []models.Transaction
	GenerateBillTransactions(userID string, startDate, endDate time.Time) []models.Transaction
	GenerateDailyPurchases(userID string, startDate, endDate time.Time) []models.Transaction
}
