package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/quiz-service/internal/services"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/SAP-F-2025/quiz-service/internal/validator"
	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	BaseHandler
	quizService services.QuizService
	validator   *validator.Validator
}

type CreateQuizQuery struct {
	Count int `form:"count" validate:"omitempty,min=1,max=50"`
}

func NewQuizHandler(
	quizService services.QuizService,
	validator *validator.Validator,
	logger utils.Logger,
) *QuizHandler {
	return &QuizHandler{
		BaseHandler: NewBaseHandler(logger),
		quizService: quizService,
		validator:   validator,
	}
}

// GetQuiz samples a new quiz
// @Summary Create quiz
// @Description Samples random questions, without answers, and opens a quiz session
// @Tags quiz
// @Produce json
// @Param count query int false "Number of questions (1-50)"
// @Success 200 {object} models.Quiz
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /quiz [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	var query CreateQuizQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid query parameters", err, err.Error())
		return
	}

	if err := h.validator.Validate(&query); err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Creating quiz", "count", query.Count)

	quiz, err := h.quizService.CreateQuiz(c.Request.Context(), query.Count)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}
