package models

import (
	"encoding/json"
	"math"
)

// SubmissionItem is one answered question of a quiz submission.
// Response is kept raw because its shape depends on the question type.
type SubmissionItem struct {
	ID       FlexibleID      `json:"id"`
	Response json.RawMessage `json:"response"`
	TimeMs   Millis          `json:"time_ms"`
}

type QuestionResult struct {
	ID          string       `json:"id"`
	Type        QuestionType `json:"type"`
	Earned      float64      `json:"earned"`
	Max         float64      `json:"max"`
	TimeMs      int64        `json:"time_ms"`
	TimeSeconds float64      `json:"time_seconds"`
	Feedback    string       `json:"feedback"`

	// tf and mcq
	Correct *bool `json:"correct,omitempty"`

	// frq
	KeywordsHit   *int `json:"keywords_hit,omitempty"`
	KeywordsTotal *int `json:"keywords_total,omitempty"`
}

// FullCredit reports whether the item earned its maximum score.
func (r QuestionResult) FullCredit() bool {
	return r.Max > 0 && math.Abs(r.Earned-r.Max) < 1e-6
}

type GradingResult struct {
	ScoreTotal         float64          `json:"score_total"`
	ScoreMax           float64          `json:"score_max"`
	PerQuestion        []QuestionResult `json:"per_question"`
	TimeSummaryMs      int64            `json:"time_summary_ms"`
	TimeSummarySeconds float64          `json:"time_summary_seconds"`
}

// MillisToSeconds converts milliseconds to seconds rounded to 2 decimals.
func MillisToSeconds(ms int64) float64 {
	return math.Round(float64(ms)/10) / 100
}
