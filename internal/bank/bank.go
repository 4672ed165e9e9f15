// Package bank normalizes question bank records and prepares them for quiz takers.
package bank

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/SAP-F-2025/quiz-service/internal/models"
)

// optionLabel matches a leading choice label such as "A) " or "c. ".
var optionLabel = regexp.MustCompile(`^[A-Da-d](?:\)\s*|\.\s+)`)

const choiceLetters = "ABCD"

// StripOptionLabel removes a leading letter label from an option.
func StripOptionLabel(opt string) string {
	return strings.TrimSpace(optionLabel.ReplaceAllString(opt, ""))
}

// LetterIndex returns the position a single choice letter refers to,
// or -1 when s is not a single letter A-D (case-insensitive).
func LetterIndex(s string) int {
	if len(s) != 1 {
		return -1
	}
	return strings.IndexByte(choiceLetters, strings.ToUpper(s)[0])
}

// Decode parses a question bank document and normalizes every record.
func Decode(data []byte) ([]*models.Question, error) {
	var raw []models.RawQuestion
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode question bank: %w", err)
	}

	questions := make([]*models.Question, 0, len(raw))
	for i, r := range raw {
		q, err := Normalize(r)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// Normalize turns a loosely formatted record into a Question: the id is
// stringified, "question" stands in for a missing "prompt", multiple choice
// options lose their letter labels and letter answers are resolved to option
// text (a letter with no matching option is kept as written), and a free
// response answer becomes the keyword list when none is given.
func Normalize(r models.RawQuestion) (*models.Question, error) {
	q := &models.Question{
		ID:   r.IDString(),
		Type: models.QuestionType(strings.ToLower(strings.TrimSpace(r.Type))),
	}

	switch {
	case r.Prompt != nil:
		q.Prompt = *r.Prompt
	case r.Question != nil:
		q.Prompt = *r.Question
	}

	switch q.Type {
	case models.TrueFalse:
		answer, err := r.AnswerBool()
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", q.ID, err)
		}
		q.BoolAnswer = answer

	case models.MultipleChoice:
		q.Options = make([]string, len(r.Options))
		for i, opt := range r.Options {
			q.Options[i] = StripOptionLabel(opt)
		}
		answer := r.AnswerString()
		if idx := LetterIndex(answer); idx >= 0 && idx < len(q.Options) {
			answer = q.Options[idx]
		} else {
			// an answer copied verbatim from a labelled option follows the option
			for i, opt := range r.Options {
				if answer == strings.TrimSpace(opt) {
					answer = q.Options[i]
					break
				}
			}
		}
		q.ChoiceAnswer = answer

	case models.FreeResponse:
		q.Keywords = r.Keywords
		if r.HasAnswer() {
			q.TextAnswer = strings.TrimSpace(r.AnswerString())
			if len(q.Keywords) == 0 {
				q.Keywords = []string{q.TextAnswer}
			}
		}
	}

	return q, nil
}

// Sanitize returns copies of the questions stripped of everything that would
// give the answer away.
func Sanitize(questions []*models.Question) []models.ClientQuestion {
	out := make([]models.ClientQuestion, 0, len(questions))
	for _, q := range questions {
		cq := models.ClientQuestion{
			ID:     q.ID,
			Type:   q.Type,
			Prompt: q.Prompt,
		}
		if len(q.Options) > 0 {
			cq.Options = append([]string(nil), q.Options...)
		}
		out = append(out, cq)
	}
	return out
}

// PickRandom returns min(n, len(questions)) distinct questions chosen uniformly.
func PickRandom(questions []*models.Question, n int) []*models.Question {
	if n <= 0 {
		return []*models.Question{}
	}
	if n > len(questions) {
		n = len(questions)
	}

	picked := make([]*models.Question, len(questions))
	copy(picked, questions)
	rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	return picked[:n]
}

// IDs lists question IDs in order.
func IDs(questions []*models.Question) []string {
	ids := make([]string, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}

// Filter keeps the questions whose ID is in allowed, preserving bank order.
func Filter(questions []*models.Question, allowed []string) []*models.Question {
	set := make(map[string]struct{}, len(allowed))
	for _, id := range allowed {
		set[id] = struct{}{}
	}

	out := make([]*models.Question, 0, len(allowed))
	for _, q := range questions {
		if _, ok := set[q.ID]; ok {
			out = append(out, q)
		}
	}
	return out
}
