package validator

import (
	"fmt"
	"strings"

	"github.com/SAP-F-2025/quiz-service/internal/models"
)

// QuestionValidator handles question-specific validation
type QuestionValidator struct{}

// NewQuestionValidator creates a new question validator
func NewQuestionValidator() *QuestionValidator {
	return &QuestionValidator{}
}

// Validate checks the fields that only make sense for the question's type
func (v *QuestionValidator) Validate(q *models.Question) ValidationErrors {
	var errs ValidationErrors

	switch q.Type {
	case models.MultipleChoice:
		errs = append(errs, v.validateMultipleChoice(q)...)
	case models.FreeResponse:
		errs = append(errs, v.validateFreeResponse(q)...)
	case models.TrueFalse:
		// any boolean answer is acceptable
	}

	return errs
}

// ValidateBatch validates every question and rejects duplicate IDs
func (v *QuestionValidator) ValidateBatch(questions []*models.Question) ValidationErrors {
	var errs ValidationErrors
	seen := make(map[string]bool, len(questions))

	for i, q := range questions {
		if seen[q.ID] {
			errs = append(errs, *NewValidationError(fmt.Sprintf("questions[%d].id", i), "must be unique", q.ID))
		}
		seen[q.ID] = true
		errs = append(errs, v.Validate(q)...)
	}

	return errs
}

func (v *QuestionValidator) validateMultipleChoice(q *models.Question) ValidationErrors {
	var errs ValidationErrors

	if len(q.Options) == 0 {
		errs = append(errs, *NewValidationError("options", "multiple choice question needs at least one option", q.ID))
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			errs = append(errs, *NewValidationError(fmt.Sprintf("options[%d]", i), "option cannot be empty", q.ID))
		}
	}

	return errs
}

func (v *QuestionValidator) validateFreeResponse(q *models.Question) ValidationErrors {
	var errs ValidationErrors

	for i, kw := range q.Keywords {
		if strings.TrimSpace(kw) == "" {
			errs = append(errs, *NewValidationError(fmt.Sprintf("keywords[%d]", i), "keyword cannot be empty", q.ID))
		}
	}

	return errs
}
