package validator

import (
	"testing"

	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuestion(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		question  *models.Question
		wantField string
	}{
		{
			name:     "valid true false",
			question: &models.Question{ID: "1", Type: models.TrueFalse, Prompt: "Sky is blue", BoolAnswer: true},
		},
		{
			name:     "valid multiple choice",
			question: &models.Question{ID: "2", Type: models.MultipleChoice, Prompt: "Capital?", Options: []string{"Paris", "London"}, ChoiceAnswer: "London"},
		},
		{
			name:      "missing prompt",
			question:  &models.Question{ID: "3", Type: models.FreeResponse},
			wantField: "prompt",
		},
		{
			name:      "unknown type",
			question:  &models.Question{ID: "4", Type: "essay", Prompt: "Discuss"},
			wantField: "type",
		},
		{
			name:      "multiple choice without options",
			question:  &models.Question{ID: "5", Type: models.MultipleChoice, Prompt: "Pick"},
			wantField: "options",
		},
		{
			name:      "blank keyword",
			question:  &models.Question{ID: "6", Type: models.FreeResponse, Prompt: "Explain", Keywords: []string{"ok", " "}},
			wantField: "keywords[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateQuestion(tt.question)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var errs ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}
}

func TestValidateBatch_DuplicateIDs(t *testing.T) {
	qv := NewQuestionValidator()

	errs := qv.ValidateBatch([]*models.Question{
		{ID: "1", Type: models.TrueFalse, Prompt: "a"},
		{ID: "1", Type: models.TrueFalse, Prompt: "b"},
	})

	require.Len(t, errs, 1)
	assert.Equal(t, "questions[1].id", errs[0].Field)
}

func TestValidate_UploadKind(t *testing.T) {
	v := New()

	type form struct {
		Kind string `form:"kind" validate:"required,upload_kind"`
	}

	assert.NoError(t, v.Validate(&form{Kind: UploadKindRubric}))

	err := v.Validate(&form{Kind: "slides"})
	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "kind", errs[0].Field)
	assert.Equal(t, "upload_kind", errs[0].Rule)
}
