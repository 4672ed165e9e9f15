package models

// ClientQuestion is a question as sent to a quiz taker: no answer, no keywords.
type ClientQuestion struct {
	ID      string       `json:"id"`
	Type    QuestionType `json:"type"`
	Prompt  string       `json:"prompt"`
	Options []string     `json:"options,omitempty"`
	Stats   *StatSummary `json:"stats,omitempty"`
}

type Quiz struct {
	QuizID    string           `json:"quiz_id"`
	Questions []ClientQuestion `json:"questions"`
}
