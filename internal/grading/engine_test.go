package grading

import (
	"encoding/json"
	"testing"

	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRubric() models.Rubric {
	r := models.NewRubric()
	r[models.TrueFalse].Feedback["1"] = "tf right"
	r[models.TrueFalse].Feedback["0"] = "tf wrong"
	r[models.MultipleChoice].Feedback["1"] = "mcq right"
	r[models.MultipleChoice].Feedback["0"] = "mcq wrong"
	r[models.FreeResponse].Feedback["high"] = "frq high"
	r[models.FreeResponse].Feedback["medium"] = "frq medium"
	r[models.FreeResponse].Feedback["low"] = "frq low"
	return r
}

func testQuestions() []*models.Question {
	return []*models.Question{
		{ID: "tf1", Type: models.TrueFalse, Prompt: "Sky is blue", BoolAnswer: true},
		{ID: "tf2", Type: models.TrueFalse, Prompt: "Fire is cold", BoolAnswer: false},
		{ID: "mcq1", Type: models.MultipleChoice, Prompt: "Capital of UK", Options: []string{"Paris", "London", "Rome"}, ChoiceAnswer: "London"},
		{ID: "frq1", Type: models.FreeResponse, Prompt: "Photosynthesis", Keywords: []string{"Light", "water", "carbon", "sugar"}},
		{ID: "frq0", Type: models.FreeResponse, Prompt: "No keywords"},
	}
}

func item(id string, response string, timeMs int64) models.SubmissionItem {
	return models.SubmissionItem{ID: models.FlexibleID(id), Response: json.RawMessage(response), TimeMs: models.Millis(timeMs)}
}

func gradeOne(t *testing.T, sub models.SubmissionItem) models.QuestionResult {
	t.Helper()
	res, err := Grade(testQuestions(), testRubric(), []models.SubmissionItem{sub})
	require.NoError(t, err)
	require.Len(t, res.PerQuestion, 1)
	return res.PerQuestion[0]
}

func TestGrade_TrueFalseResponses(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     bool
	}{
		{"bool true", `true`, true},
		{"string True", `"True"`, true},
		{"string t", `"t"`, true},
		{"string 1", `"1"`, true},
		{"number 1", `1`, true},
		{"bool false", `false`, false},
		{"string yes", `"yes"`, false},
		{"null", `null`, false},
		{"missing", ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gradeOne(t, item("tf1", tt.response, 0))
			require.NotNil(t, r.Correct)
			assert.Equal(t, tt.want, *r.Correct)
			if tt.want {
				assert.Equal(t, 1.0, r.Earned)
				assert.Equal(t, "tf right", r.Feedback)
			} else {
				assert.Equal(t, 0.0, r.Earned)
				assert.Equal(t, "tf wrong", r.Feedback)
			}
			assert.Equal(t, 1.0, r.Max)
		})
	}
}

func TestGrade_TrueFalseFalseAnswer(t *testing.T) {
	r := gradeOne(t, item("tf2", `"false"`, 0))
	assert.True(t, *r.Correct)
	assert.Equal(t, 1.0, r.Earned)
}

func TestGrade_MultipleChoice(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     bool
	}{
		{"option text", `"London"`, true},
		{"padded text", `"  London "`, true},
		{"letter", `"B"`, true},
		{"lowercase letter", `"b"`, true},
		{"wrong letter", `"A"`, false},
		{"case differs", `"london"`, false},
		{"letter beyond options", `"D"`, false},
		{"null", `null`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gradeOne(t, item("mcq1", tt.response, 0))
			assert.Equal(t, tt.want, *r.Correct)
			assert.Nil(t, r.KeywordsHit)
			if tt.want {
				assert.Equal(t, "mcq right", r.Feedback)
			} else {
				assert.Equal(t, "mcq wrong", r.Feedback)
			}
		})
	}
}

func TestGrade_FreeResponseThresholds(t *testing.T) {
	tests := []struct {
		name     string
		response string
		hits     int
		earned   float64
		feedback string
	}{
		{"all keywords", `"light and WATER make carbon sugar"`, 4, 1.0, "frq high"},
		{"exactly 75 percent", `"light, water, carbon"`, 3, 1.0, "frq high"},
		{"exactly 50 percent", `"light and water"`, 2, 0.5, "frq medium"},
		{"25 percent", `"light only"`, 1, 0.0, "frq low"},
		{"none", `"nothing relevant"`, 0, 0.0, "frq low"},
		{"substring match", `"sunlight"`, 1, 0.0, "frq low"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gradeOne(t, item("frq1", tt.response, 0))
			require.NotNil(t, r.KeywordsHit)
			assert.Equal(t, tt.hits, *r.KeywordsHit)
			assert.Equal(t, 4, *r.KeywordsTotal)
			assert.Equal(t, tt.earned, r.Earned)
			assert.Equal(t, tt.feedback, r.Feedback)
			assert.Nil(t, r.Correct)
		})
	}
}

func TestGrade_FreeResponseWithoutKeywords(t *testing.T) {
	r := gradeOne(t, item("frq0", `"anything"`, 0))
	assert.Equal(t, 0, *r.KeywordsHit)
	assert.Equal(t, 1, *r.KeywordsTotal)
	assert.Equal(t, "frq low", r.Feedback)
}

func TestGrade_Aggregates(t *testing.T) {
	subs := []models.SubmissionItem{
		item("tf1", `true`, 1500),
		item("mcq1", `"A"`, 2345),
		item("frq1", `"light water"`, 0),
		item("unknown", `true`, 9999),
	}

	res, err := Grade(testQuestions(), testRubric(), subs)
	require.NoError(t, err)

	require.Len(t, res.PerQuestion, 3)
	assert.Equal(t, 1.5, res.ScoreTotal)
	assert.Equal(t, 3.0, res.ScoreMax)
	assert.Equal(t, int64(3845), res.TimeSummaryMs)
	assert.Equal(t, 3.85, res.TimeSummarySeconds)
	assert.Equal(t, 2.35, res.PerQuestion[1].TimeSeconds)

	for _, r := range res.PerQuestion {
		assert.NotEqual(t, "unknown", r.ID)
	}
}

func TestGrade_Empty(t *testing.T) {
	res, err := Grade(testQuestions(), testRubric(), nil)
	require.NoError(t, err)
	assert.Empty(t, res.PerQuestion)
	assert.Zero(t, res.ScoreMax)

	raw, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"per_question":[]`)
}

func TestGrade_IncompleteRubric(t *testing.T) {
	rubric := testRubric()
	delete(rubric[models.FreeResponse].Feedback, "medium")

	_, err := Grade(testQuestions(), rubric, []models.SubmissionItem{item("frq1", `"light water"`, 0)})
	assert.ErrorIs(t, err, ErrRubricIncomplete)

	delete(rubric, models.TrueFalse)
	_, err = Grade(testQuestions(), rubric, []models.SubmissionItem{item("tf1", `true`, 0)})
	assert.ErrorIs(t, err, ErrRubricIncomplete)
}

func TestGrade_UnsupportedType(t *testing.T) {
	questions := []*models.Question{{ID: "x", Type: "essay", Prompt: "p"}}
	_, err := Grade(questions, testRubric(), []models.SubmissionItem{item("x", `"text"`, 0)})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSubmissionDecoding(t *testing.T) {
	var subs []models.SubmissionItem
	err := json.Unmarshal([]byte(`[
		{"id": 7, "response": true, "time_ms": 1200},
		{"id": "8", "response": "B", "time_ms": "350"},
		{"id": "9", "response": "x", "time_ms": "abc"},
		{"id": "10", "response": "x", "time_ms": -5},
		{"id": "11", "response": "x", "time_ms": 12.5},
		{"id": "12", "response": "x"}
	]`), &subs)
	require.NoError(t, err)

	assert.Equal(t, models.FlexibleID("7"), subs[0].ID)
	assert.Equal(t, models.Millis(1200), subs[0].TimeMs)
	assert.Equal(t, models.Millis(350), subs[1].TimeMs)
	for _, s := range subs[2:] {
		assert.Zero(t, s.TimeMs, "item %s", s.ID)
	}
}
