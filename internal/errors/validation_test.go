package errors

import (
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("test_field", "test message", "test_value")

	assert.Equal(t, "test_field", err.Field)
	assert.Equal(t, "test message", err.Message)
	assert.Equal(t, "test_value", err.Value)
	assert.Equal(t, "validation error on field 'test_field': test message", err.Error())
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "validation failed", errs.Error())

	errs = append(errs, *NewValidationError("field1", "message1", nil))
	assert.Equal(t, "validation failed: field1 message1", errs.Error())

	errs = append(errs, *NewValidationError("field2", "message2", nil))
	assert.Equal(t, "validation failed: 2 field errors", errs.Error())
}

func TestValidationErrors_Fields(t *testing.T) {
	errs := ValidationErrors{
		*NewValidationError("prompt", "is required", nil),
		*NewValidationError("options[0]", "option cannot be empty", "q1"),
	}

	assert.Equal(t, []string{"prompt", "options[0]"}, errs.Fields())
}

func TestToValidationErrors(t *testing.T) {
	type request struct {
		QuizID string `validate:"required"`
		Count  int    `validate:"min=1,max=50"`
	}

	err := validator.New().Struct(request{Count: 99})
	require.Error(t, err)

	errs := ToValidationErrors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, "QuizID", errs[0].Field)
	assert.Equal(t, "is required", errs[0].Message)
	assert.Equal(t, "Count", errs[1].Field)
	assert.Equal(t, "must be at most 50", errs[1].Message)
	assert.Equal(t, "max", errs[1].Rule)
}

func TestToValidationErrors_NestedPath(t *testing.T) {
	type item struct {
		ID string `validate:"required"`
	}
	type submission struct {
		Answers []item `validate:"dive"`
	}

	errs := ToValidationErrors(validator.New().Struct(submission{Answers: []item{{ID: "1"}, {}}}))
	require.Len(t, errs, 1)
	assert.Equal(t, "Answers[1].ID", errs[0].Field)
}

func TestToValidationErrors_OtherError(t *testing.T) {
	assert.Nil(t, ToValidationErrors(assert.AnError))
	assert.Nil(t, ToValidationErrors(fmt.Errorf("wrapped: %w", assert.AnError)))
}
