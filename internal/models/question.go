package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type QuestionType string

const (
	TrueFalse      QuestionType = "tf"
	MultipleChoice QuestionType = "mcq"
	FreeResponse   QuestionType = "frq"
)

// QuestionTypes lists every supported question type.
var QuestionTypes = []QuestionType{TrueFalse, MultipleChoice, FreeResponse}

func (t QuestionType) Valid() bool {
	switch t {
	case TrueFalse, MultipleChoice, FreeResponse:
		return true
	}
	return false
}

// Question is a normalized question bank entry.
//
// Only the fields relevant to Type are populated: BoolAnswer for tf,
// Options and ChoiceAnswer for mcq, Keywords (and optionally TextAnswer) for frq.
type Question struct {
	ID     string       `json:"id" validate:"required"`
	Type   QuestionType `json:"type" validate:"required,question_type"`
	Prompt string       `json:"prompt" validate:"required"`

	Options      []string `json:"options,omitempty"`
	Keywords     []string `json:"keywords,omitempty"`
	BoolAnswer   bool     `json:"-"`
	ChoiceAnswer string   `json:"-"`
	TextAnswer   string   `json:"-"`
}

// questionRecord is the on-disk shape of a question.
type questionRecord struct {
	ID       string          `json:"id"`
	Type     QuestionType    `json:"type"`
	Prompt   string          `json:"prompt"`
	Options  []string        `json:"options,omitempty"`
	Answer   json.RawMessage `json:"answer,omitempty"`
	Keywords []string        `json:"keywords,omitempty"`
}

func (q Question) MarshalJSON() ([]byte, error) {
	rec := questionRecord{
		ID:       q.ID,
		Type:     q.Type,
		Prompt:   q.Prompt,
		Options:  q.Options,
		Keywords: q.Keywords,
	}

	var answer any
	switch q.Type {
	case TrueFalse:
		answer = q.BoolAnswer
	case MultipleChoice:
		answer = q.ChoiceAnswer
	case FreeResponse:
		if q.TextAnswer != "" {
			answer = q.TextAnswer
		}
	}
	if answer != nil {
		raw, err := json.Marshal(answer)
		if err != nil {
			return nil, err
		}
		rec.Answer = raw
	}

	return json.Marshal(rec)
}

// RawQuestion is a question as it appears in a loosely formatted bank file:
// numeric ids, "question" instead of "prompt", letter answers and so on.
type RawQuestion struct {
	ID       json.RawMessage `json:"id"`
	Type     string          `json:"type"`
	Prompt   *string         `json:"prompt"`
	Question *string         `json:"question"`
	Options  []string        `json:"options"`
	Answer   json.RawMessage `json:"answer"`
	Keywords []string        `json:"keywords"`
}

// IDString renders the raw id the way it was written, without JSON quoting.
func (r RawQuestion) IDString() string {
	return ScalarString(r.ID)
}

// HasAnswer reports whether the record carries a non-null answer.
func (r RawQuestion) HasAnswer() bool {
	return !isNull(r.Answer)
}

// AnswerString returns the answer as text; a JSON string is unquoted,
// anything else is returned in its literal JSON form.
func (r RawQuestion) AnswerString() string {
	return ScalarString(r.Answer)
}

// AnswerBool interprets the answer of a true-false record.
func (r RawQuestion) AnswerBool() (bool, error) {
	if isNull(r.Answer) {
		return false, fmt.Errorf("missing answer")
	}
	var b bool
	if err := json.Unmarshal(r.Answer, &b); err == nil {
		return b, nil
	}
	s := strings.ToLower(strings.TrimSpace(r.AnswerString()))
	switch s {
	case "true", "t", "1", "yes":
		return true, nil
	case "false", "f", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("answer %q is not a boolean", s)
}

// ScalarString renders a JSON scalar as plain text. Strings are unquoted,
// numbers and booleans keep their literal form, null and empty input give "".
func ScalarString(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

func isNull(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}

// FlexibleID accepts both JSON strings and numbers.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	*f = FlexibleID(ScalarString(data))
	return nil
}

// Millis is an elapsed time in milliseconds. Decoding never fails: anything
// other than a non-negative integer (or a string of digits) becomes 0.
type Millis int64

func (m *Millis) UnmarshalJSON(data []byte) error {
	*m = 0
	s := ScalarString(data)
	if s == "" {
		return nil
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	*m = Millis(v)
	return nil
}
