package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/SAP-F-2025/quiz-service/internal/services"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/SAP-F-2025/quiz-service/internal/validator"
	"github.com/gin-gonic/gin"
)

type IngestionHandler struct {
	BaseHandler
	ingestionService services.IngestionService
	validator        *validator.Validator
}

type UploadForm struct {
	Kind string `form:"kind" validate:"omitempty,upload_kind"`
}

func NewIngestionHandler(
	ingestionService services.IngestionService,
	validator *validator.Validator,
	logger utils.Logger,
) *IngestionHandler {
	return &IngestionHandler{
		BaseHandler:      NewBaseHandler(logger),
		ingestionService: ingestionService,
		validator:        validator,
	}
}

// Upload replaces the question bank or rubric from a document
// @Summary Upload document
// @Description Parses a PDF, XLSX or text document and overwrites the question bank or rubric
// @Tags ingestion
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document"
// @Param kind formData string false "questions (default) or rubric"
// @Success 200 {object} services.IngestionResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /upload [post]
func (h *IngestionHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, services.ErrNoFileUploaded.Error(), err)
		return
	}

	var form UploadForm
	if err := c.ShouldBind(&form); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Invalid form data", err, err.Error())
		return
	}
	if err := h.validator.Validate(&form); err != nil {
		h.RespondWithError(c, http.StatusBadRequest, fmt.Sprintf("%s: %s", services.ErrUnknownUploadKind, form.Kind), err, err)
		return
	}

	h.LogRequest(c, "Uploading document", "filename", fileHeader.Filename, "kind", form.Kind, "size", fileHeader.Size)

	file, err := fileHeader.Open()
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Could not open uploaded file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.RespondWithError(c, http.StatusBadRequest, "Could not read uploaded file", err)
		return
	}

	result, err := h.ingestionService.Ingest(c.Request.Context(), form.Kind, fileHeader.Filename, data)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
