package ingest

import (
	"strconv"
	"strings"

	"github.com/SAP-F-2025/quiz-service/internal/models"
)

const (
	labelCriteria = "CRITERIA:"
	labelFeedback = "FEEDBACK:"

	defaultMaxScore = 1.0
)

// ParseRubric reads a sectioned rubric document:
//
//	[TF]
//	CRITERIA: accuracy|1|Correct truth value
//	FEEDBACK: 1|Correct!
//	FEEDBACK: 0|Not quite.
//
// Section names are matched by substring ("tf", "mcq", "frq"); lines outside
// a recognised section are ignored. Every question type gets a section, empty
// when the document does not mention it.
func ParseRubric(text string) models.Rubric {
	rubric := models.NewRubric()

	var (
		section models.RubricSection
		inside  bool
	)

	for _, line := range cleanLines(text) {
		if name, ok := sectionName(line); ok {
			var qtype models.QuestionType
			qtype, inside = matchSection(name)
			if inside {
				section = rubric[qtype]
			}
			continue
		}
		if !inside {
			continue
		}

		if value, ok := cutLabel(line, labelCriteria); ok {
			parts := strings.Split(value, "|")
			if len(parts) < 3 {
				continue
			}
			name := strings.TrimSpace(parts[0])
			maxScore, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
			if err != nil {
				maxScore = defaultMaxScore
			}
			section.Criteria[name] = models.Criterion{
				Description: strings.TrimSpace(strings.Join(parts[2:], "|")),
				MaxScore:    maxScore,
			}
		} else if value, ok := cutLabel(line, labelFeedback); ok {
			parts := strings.Split(value, "|")
			if len(parts) < 2 {
				continue
			}
			section.Feedback[strings.TrimSpace(parts[0])] = strings.TrimSpace(strings.Join(parts[1:], "|"))
		}
	}

	return rubric
}

// sectionName extracts Name from a "[Name]" header line.
func sectionName(line string) (string, bool) {
	if len(line) < 2 || line[0] != '[' || line[len(line)-1] != ']' {
		return "", false
	}
	return line[1 : len(line)-1], true
}

func matchSection(name string) (models.QuestionType, bool) {
	name = strings.ToLower(name)
	switch {
	case strings.Contains(name, "tf"):
		return models.TrueFalse, true
	case strings.Contains(name, "mcq"):
		return models.MultipleChoice, true
	case strings.Contains(name, "frq"):
		return models.FreeResponse, true
	}
	return "", false
}
