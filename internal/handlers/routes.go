package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes wires every API endpoint onto the echo instance
func RegisterRoutes(
	e *echo.Echo,
	budget *BudgetHandler,
	health *HealthHandler,
	goals *GoalHandler,
	chat *ChatHandler,
	profile *ProfileHandler,
	status *StatusHandler,
) {
	e.GET("/healthz", status.Healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")

	budgetGroup := api.Group("/budget")
	budgetGroup.POST("/upload-csv", budget.UploadCSV)
	budgetGroup.POST("/analyze", budget.Analyze)
	budgetGroup.POST("/categorize", budget.Categorize)

	healthGroup := api.Group("/health")
	healthGroup.POST("/score", health.CalculateScore)
	healthGroup.POST("/action-items", health.ActionItems)
	healthGroup.GET("/peer-comparison", health.PeerComparison)

	goalGroup := api.Group("/goals")
	goalGroup.POST("", goals.CreateGoal)
	goalGroup.GET("", goals.ListGoals)
	goalGroup.POST("/prioritize", goals.Prioritize)
	goalGroup.GET("/:id", goals.GetGoal)
	goalGroup.PUT("/:id", goals.UpdateGoal)
	goalGroup.DELETE("/:id", goals.DeleteGoal)
	goalGroup.POST("/:id/plan", goals.Plan)
	goalGroup.POST("/:id/progress", goals.Progress)

	chatGroup := api.Group("/chat")
	chatGroup.POST("", chat.Chat)
	chatGroup.GET("/knowledge-search", chat.KnowledgeSearch)

	profileGroup := api.Group("/profile")
	profileGroup.GET("", profile.GetProfile)
	profileGroup.PUT("", profile.UpsertProfile)
	profileGroup.DELETE("", profile.DeleteProfile)
}

// RegisterDevRoutes wires seeding endpoints that must never run in production
func RegisterDevRoutes(e *echo.Echo, dev *DevHandler) {
	devGroup := e.Group("/api/dev")
	devGroup.POST("/sample-data", dev.GenerateSampleData)
	devGroup.DELETE("/sample-data", dev.ClearSampleData)
}
