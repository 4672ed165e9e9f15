package models

// Feedback bucket keys.
const (
	FeedbackCorrect   = "1"
	FeedbackIncorrect = "0"
	FeedbackHigh      = "high"
	FeedbackMedium    = "medium"
	FeedbackLow       = "low"
)

type Criterion struct {
	Description string  `json:"description"`
	MaxScore    float64 `json:"max_score"`
}

type RubricSection struct {
	Criteria map[string]Criterion `json:"criteria"`
	Feedback map[string]string    `json:"feedback"`
}

// Rubric maps a question type to its scoring criteria and feedback texts.
type Rubric map[QuestionType]RubricSection

// NewRubric returns a rubric with an empty section for every question type.
func NewRubric() Rubric {
	r := make(Rubric, len(QuestionTypes))
	for _, t := range QuestionTypes {
		r[t] = RubricSection{
			Criteria: map[string]Criterion{},
			Feedback: map[string]string{},
		}
	}
	return r
}

// Feedback looks up the feedback text for a type and outcome bucket.
func (r Rubric) Feedback(t QuestionType, bucket string) (string, bool) {
	section, ok := r[t]
	if !ok {
		return "", false
	}
	text, ok := section.Feedback[bucket]
	return text, ok
}

// FeedbackCount is the total number of feedback entries across sections.
func (r Rubric) FeedbackCount() int {
	n := 0
	for _, section := range r {
		n += len(section.Feedback)
	}
	return n
}
