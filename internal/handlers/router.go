package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/quiz-service/internal/services"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/SAP-F-2025/quiz-service/internal/validator"
	"github.com/SAP-F-2025/quiz-service/pkg/monitoring"
	"github.com/gin-gonic/gin"
)

type HandlerManager struct {
	quizHandler      *QuizHandler
	gradingHandler   *GradingHandler
	ingestionHandler *IngestionHandler
	statsHandler     *StatsHandler
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	validator *validator.Validator,
	logger utils.Logger,
) *HandlerManager {
	return &HandlerManager{
		quizHandler:      NewQuizHandler(serviceManager.Quiz(), validator, logger),
		gradingHandler:   NewGradingHandler(serviceManager.Grading(), logger),
		ingestionHandler: NewIngestionHandler(serviceManager.Ingestion(), validator, logger),
		statsHandler:     NewStatsHandler(serviceManager.Stats(), logger),
	}
}

// SetupRoutes sets up all API routes. The quiz endpoints are served both at
// the root, where the browser client expects them, and under /api/v1.
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	router.GET("/health", HealthCheck)
	router.GET("/metrics", monitoring.PrometheusHandler())

	hm.registerQuizRoutes(router.Group(""))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		hm.registerQuizRoutes(v1)

		v1.GET("/stats/export", hm.statsHandler.ExportStats)
		v1.GET("/rubric", hm.gradingHandler.GetRubric)
	}
}

func (hm *HandlerManager) registerQuizRoutes(group *gin.RouterGroup) {
	group.GET("/quiz", hm.quizHandler.GetQuiz)
	group.POST("/grade", hm.gradingHandler.Grade)
	group.POST("/upload", hm.ingestionHandler.Upload)
	group.GET("/stats", hm.statsHandler.GetStats)
}

// HealthCheck reports liveness
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: "quiz-service",
	})
}
