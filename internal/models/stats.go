package models

import "time"

type QuestionStat struct {
	Seen      int `json:"seen"`
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

// QuestionStats is the cumulative per-question counter file, keyed by question ID.
type QuestionStats map[string]QuestionStat

// StatSummary is what a client sees next to a question.
type StatSummary struct {
	Seen        int      `json:"seen"`
	Correct     int      `json:"correct"`
	Incorrect   int      `json:"incorrect"`
	CorrectRate *float64 `json:"correct_rate"`
}

func (s QuestionStat) Summary() StatSummary {
	summary := StatSummary{
		Seen:      s.Seen,
		Correct:   s.Correct,
		Incorrect: s.Incorrect,
	}
	if s.Seen > 0 {
		rate := float64(s.Correct) / float64(s.Seen)
		summary.CorrectRate = &rate
	}
	return summary
}

// AttemptRecord is one row of the results log.
type AttemptRecord struct {
	Timestamp   time.Time
	QuizID      string
	ScoreTotal  float64
	ScoreMax    float64
	TimeMs      int64
	TimeSeconds float64
}
