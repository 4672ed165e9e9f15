package services

import (
	"errors"
	"fmt"

	apperrors "github.com/SAP-F-2025/quiz-service/internal/errors"
	"github.com/SAP-F-2025/quiz-service/internal/grading"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrInternalError    = errors.New("internal server error")
	ErrBadRequest       = errors.New("bad request")

	// Quiz specific errors
	ErrQuizNotFound            = errors.New("Invalid or expired quiz_id")
	ErrQuestionBankUnavailable = errors.New("question bank unavailable")
	ErrRubricUnavailable       = errors.New("rubric unavailable")

	// Ingestion specific errors
	ErrNoFileUploaded     = errors.New("No file uploaded")
	ErrUnknownUploadKind  = errors.New("Unknown kind")
	ErrNoQuestionsParsed  = errors.New("No questions parsed. Check format.")
	ErrNoRubricParsed     = errors.New("No rubric feedback parsed. Check format.")
	ErrUnreadableDocument = errors.New("document could not be read")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

// IngestionError carries the start of the extracted text so a failed upload
// can be diagnosed from the response alone.
type IngestionError struct {
	Kind    string
	Snippet string
	Err     error
}

func (ie *IngestionError) Error() string {
	return fmt.Sprintf("ingestion of %s failed: %v", ie.Kind, ie.Err)
}

func (ie *IngestionError) Unwrap() error {
	return ie.Err
}

// ===== ERROR HELPERS =====

// NewValidationError creates a new validation error using the shared type
func NewValidationError(field, message string, value interface{}) *ValidationError {
	return apperrors.NewValidationError(field, message, value)
}

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrQuizNotFound)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) {
		return true
	}
	var ve apperrors.ValidationErrors
	if errors.As(err, &ve) {
		return true
	}
	var single *apperrors.ValidationError
	return errors.As(err, &single)
}

// IsClientError reports errors caused by the request rather than the server
func IsClientError(err error) bool {
	return IsNotFound(err) ||
		IsValidation(err) ||
		errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrNoFileUploaded) ||
		errors.Is(err, ErrUnknownUploadKind) ||
		errors.Is(err, ErrNoQuestionsParsed) ||
		errors.Is(err, ErrNoRubricParsed)
}

// IsRubricIncomplete checks if grading hit a question type or outcome the rubric does not cover
func IsRubricIncomplete(err error) bool {
	return errors.Is(err, grading.ErrRubricIncomplete)
}
