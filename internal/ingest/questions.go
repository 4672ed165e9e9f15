// Package ingest turns text extracted from uploaded documents into question
// bank and rubric records.
package ingest

import (
	"strings"

	"github.com/SAP-F-2025/quiz-service/internal/bank"
	"github.com/SAP-F-2025/quiz-service/internal/models"
)

// Field labels recognised in question blocks.
const (
	labelQID      = "QID:"
	labelType     = "TYPE:"
	labelQuestion = "QUESTION:"
	labelOptions  = "OPTIONS:"
	labelAnswer   = "ANSWER:"
	labelKeywords = "KEYWORDS:"
)

type questionBlock struct {
	id, qtype, prompt, answer string
	options, keywords         []string
	hasAnswer                 bool
}

// ParseQuestions reads QID-delimited blocks such as
//
//	QID: 1
//	TYPE: mcq
//	QUESTION: Capital of France?
//	OPTIONS: A) Paris; B) London
//	ANSWER: A
//
// Blocks without a QID, TYPE or QUESTION, or with an unknown TYPE, are dropped.
func ParseQuestions(text string) []*models.Question {
	var (
		questions []*models.Question
		current   *questionBlock
	)

	flush := func() {
		if current == nil {
			return
		}
		if q := current.build(); q != nil {
			questions = append(questions, q)
		}
		current = nil
	}

	for _, line := range cleanLines(text) {
		if value, ok := cutLabel(line, labelQID); ok {
			flush()
			current = &questionBlock{id: value}
			continue
		}
		if current == nil {
			continue
		}

		if value, ok := cutLabel(line, labelType); ok {
			current.qtype = value
		} else if value, ok := cutLabel(line, labelQuestion); ok {
			current.prompt = value
		} else if value, ok := cutLabel(line, labelOptions); ok {
			current.options = splitList(value)
		} else if value, ok := cutLabel(line, labelAnswer); ok {
			current.answer = value
			current.hasAnswer = true
		} else if value, ok := cutLabel(line, labelKeywords); ok {
			current.keywords = splitList(value)
		}
	}
	flush()

	return questions
}

func (b *questionBlock) build() *models.Question {
	if b.id == "" || b.qtype == "" || b.prompt == "" {
		return nil
	}

	q := &models.Question{
		ID:     b.id,
		Type:   models.QuestionType(strings.ToLower(b.qtype)),
		Prompt: b.prompt,
	}

	switch q.Type {
	case models.TrueFalse:
		q.BoolAnswer = strings.HasPrefix(strings.ToLower(b.answer), "t")

	case models.MultipleChoice:
		q.Options = b.options
		q.ChoiceAnswer = b.answer
		if idx := bank.LetterIndex(b.answer); idx >= 0 && idx < len(b.options) {
			q.ChoiceAnswer = b.options[idx]
		}

	case models.FreeResponse:
		q.TextAnswer = b.answer
		switch {
		case len(b.keywords) > 0:
			q.Keywords = b.keywords
		case b.hasAnswer && b.answer != "":
			q.Keywords = []string{b.answer}
		}

	default:
		return nil
	}

	return q
}

// cleanLines trims every line and drops blanks and "---" separators.
func cleanLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.Trim(line, "-") == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// cutLabel reports whether line starts with label (case-insensitive) and
// returns the trimmed remainder.
func cutLabel(line, label string) (string, bool) {
	if len(line) < len(label) || !strings.EqualFold(line[:len(label)], label) {
		return "", false
	}
	return strings.TrimSpace(line[len(label):]), true
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ";") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
