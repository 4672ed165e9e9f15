// Package grading scores quiz submissions against question definitions and a rubric.
package grading

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/SAP-F-2025/quiz-service/internal/bank"
	"github.com/SAP-F-2025/quiz-service/internal/models"
)

var (
	ErrRubricIncomplete = errors.New("rubric has no feedback for outcome")
	ErrUnsupportedType  = errors.New("unsupported question type")
)

// Free response thresholds on the keyword hit ratio.
const (
	highRatio   = 0.75
	mediumRatio = 0.5
)

// outcome is what a per-type grader decides before feedback is attached.
type outcome struct {
	earned float64
	max    float64
	bucket string

	correct       *bool
	keywordsHit   *int
	keywordsTotal *int
}

// Grade scores every submission whose ID is among questions; others are skipped.
// A rubric without feedback for a reached outcome is a configuration error.
func Grade(questions []*models.Question, rubric models.Rubric, submissions []models.SubmissionItem) (*models.GradingResult, error) {
	byID := make(map[string]*models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	result := &models.GradingResult{PerQuestion: []models.QuestionResult{}}

	for _, item := range submissions {
		q, ok := byID[string(item.ID)]
		if !ok {
			continue
		}

		out, err := gradeItem(q, item.Response)
		if err != nil {
			return nil, err
		}

		feedback, ok := rubric.Feedback(q.Type, out.bucket)
		if !ok {
			return nil, fmt.Errorf("%w: type %q bucket %q", ErrRubricIncomplete, q.Type, out.bucket)
		}

		timeMs := int64(item.TimeMs)
		result.PerQuestion = append(result.PerQuestion, models.QuestionResult{
			ID:            q.ID,
			Type:          q.Type,
			Earned:        out.earned,
			Max:           out.max,
			TimeMs:        timeMs,
			TimeSeconds:   models.MillisToSeconds(timeMs),
			Feedback:      feedback,
			Correct:       out.correct,
			KeywordsHit:   out.keywordsHit,
			KeywordsTotal: out.keywordsTotal,
		})
		result.ScoreTotal += out.earned
		result.ScoreMax += out.max
		result.TimeSummaryMs += timeMs
	}

	result.TimeSummarySeconds = models.MillisToSeconds(result.TimeSummaryMs)
	return result, nil
}

func gradeItem(q *models.Question, response json.RawMessage) (outcome, error) {
	switch q.Type {
	case models.TrueFalse:
		return gradeTrueFalse(q, response), nil
	case models.MultipleChoice:
		return gradeMultipleChoice(q, response), nil
	case models.FreeResponse:
		return gradeFreeResponse(q, response), nil
	}
	return outcome{}, fmt.Errorf("%w: %q (question %s)", ErrUnsupportedType, q.Type, q.ID)
}

func gradeTrueFalse(q *models.Question, response json.RawMessage) outcome {
	right := ResponseBool(response) == q.BoolAnswer
	return binaryOutcome(right)
}

func gradeMultipleChoice(q *models.Question, response json.RawMessage) outcome {
	choice := strings.TrimSpace(ResponseText(response))
	if idx := bank.LetterIndex(choice); idx >= 0 && idx < len(q.Options) {
		choice = q.Options[idx]
	}
	return binaryOutcome(choice == q.ChoiceAnswer)
}

func gradeFreeResponse(q *models.Question, response json.RawMessage) outcome {
	text := strings.ToLower(ResponseText(response))

	hits := 0
	for _, kw := range q.Keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			hits++
		}
	}
	total := max(1, len(q.Keywords))
	ratio := float64(hits) / float64(total)

	out := outcome{max: 1, keywordsHit: &hits, keywordsTotal: &total}
	switch {
	case ratio >= highRatio:
		out.earned, out.bucket = 1.0, models.FeedbackHigh
	case ratio >= mediumRatio:
		out.earned, out.bucket = 0.5, models.FeedbackMedium
	default:
		out.earned, out.bucket = 0.0, models.FeedbackLow
	}
	return out
}

func binaryOutcome(right bool) outcome {
	out := outcome{max: 1, bucket: models.FeedbackIncorrect, correct: &right}
	if right {
		out.earned, out.bucket = 1, models.FeedbackCorrect
	}
	return out
}
