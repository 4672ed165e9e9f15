package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents different types of quiz events
type EventType string

const (
	EventQuizCreated          EventType = "quiz.created"
	EventQuizGraded           EventType = "quiz.graded"
	EventQuestionBankReplaced EventType = "question_bank.replaced"
	EventRubricReplaced       EventType = "rubric.replaced"
)

const (
	eventSource  = "quiz-service"
	eventVersion = "1.0"
)

// QuizEvent is the envelope for every event the service emits
type QuizEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

type QuizCreatedEvent struct {
	QuizID      string   `json:"quiz_id"`
	QuestionIDs []string `json:"question_ids"`
}

type QuizGradedEvent struct {
	QuizID             string  `json:"quiz_id"`
	ScoreTotal         float64 `json:"score_total"`
	ScoreMax           float64 `json:"score_max"`
	QuestionsGraded    int     `json:"questions_graded"`
	TimeSummarySeconds float64 `json:"time_summary_seconds"`
}

type StoreReplacedEvent struct {
	Filename string `json:"filename"`
	Count    int    `json:"count"`
}

func newEvent(t EventType, data interface{}) *QuizEvent {
	return &QuizEvent{
		ID:        GenerateEventID(),
		Type:      t,
		Timestamp: time.Now(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      data,
	}
}

// Event factory functions

func NewQuizCreatedEvent(quizID string, questionIDs []string) *QuizEvent {
	return newEvent(EventQuizCreated, QuizCreatedEvent{
		QuizID:      quizID,
		QuestionIDs: questionIDs,
	})
}

func NewQuizGradedEvent(quizID string, scoreTotal, scoreMax float64, graded int, seconds float64) *QuizEvent {
	return newEvent(EventQuizGraded, QuizGradedEvent{
		QuizID:             quizID,
		ScoreTotal:         scoreTotal,
		ScoreMax:           scoreMax,
		QuestionsGraded:    graded,
		TimeSummarySeconds: seconds,
	})
}

func NewQuestionBankReplacedEvent(filename string, count int) *QuizEvent {
	return newEvent(EventQuestionBankReplaced, StoreReplacedEvent{Filename: filename, Count: count})
}

func NewRubricReplacedEvent(filename string, count int) *QuizEvent {
	return newEvent(EventRubricReplaced, StoreReplacedEvent{Filename: filename, Count: count})
}

func GenerateEventID() string {
	return uuid.NewString()
}
