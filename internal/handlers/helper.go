package handlers

import (
	"errors"
	"net/http"

	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-service/internal/services"
	"github.com/gin-gonic/gin"
)

// handleServiceError maps service errors to HTTP responses
func (h *BaseHandler) handleServiceError(c *gin.Context, err error) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		h.RespondWithError(c, http.StatusBadRequest, "Validation failed", err, validationErrors)
		return
	}

	var ingestionError *services.IngestionError
	if errors.As(err, &ingestionError) {
		snippet := ingestionError.Snippet
		h.LogError(c, err, "Ingestion failed", "kind", ingestionError.Kind)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:            ingestionError.Err.Error(),
			DebugTextSnippet: &snippet,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrQuizNotFound):
		h.RespondWithError(c, http.StatusBadRequest, services.ErrQuizNotFound.Error(), err)
	case services.IsClientError(err):
		h.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, services.ErrRubricUnavailable) && repositories.IsNotFoundError(err):
		h.RespondWithError(c, http.StatusNotFound, "Rubric not found", err)
	case errors.Is(err, services.ErrQuestionBankUnavailable):
		h.RespondWithError(c, http.StatusInternalServerError, "Question bank unavailable", err)
	case errors.Is(err, services.ErrRubricUnavailable):
		h.RespondWithError(c, http.StatusInternalServerError, "Rubric unavailable", err)
	case services.IsRubricIncomplete(err):
		h.RespondWithError(c, http.StatusInternalServerError, "Rubric has no feedback for a graded outcome", err)
	default:
		h.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}
