package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/SAP-F-2025/quiz-service/internal/services"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/gin-gonic/gin"
)

type GradingHandler struct {
	BaseHandler
	gradingService services.GradingService
}

func NewGradingHandler(
	gradingService services.GradingService,
	logger utils.Logger,
) *GradingHandler {
	return &GradingHandler{
		BaseHandler:    NewBaseHandler(logger),
		gradingService: gradingService,
	}
}

// Grade scores a quiz submission
// @Summary Grade quiz
// @Description Grades the answers of a previously created quiz
// @Tags grading
// @Accept json
// @Produce json
// @Param submission body services.GradeRequest true "Quiz ID and answers"
// @Success 200 {object} models.GradingResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /grade [post]
func (h *GradingHandler) Grade(c *gin.Context) {
	var req services.GradeRequest
	// an empty body is graded like a missing quiz_id
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid request payload", err, err.Error())
		return
	}

	h.LogRequest(c, "Grading quiz", "quiz_id", req.QuizID, "answers", len(req.Answers))

	result, err := h.gradingService.Grade(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRubric returns the rubric currently used for grading
// @Summary Get rubric
// @Tags grading
// @Produce json
// @Success 200 {object} models.Rubric
// @Failure 404 {object} ErrorResponse
// @Router /rubric [get]
func (h *GradingHandler) GetRubric(c *gin.Context) {
	rubric, err := h.gradingService.GetRubric(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rubric)
}
