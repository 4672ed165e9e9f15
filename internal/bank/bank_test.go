package bank

import (
	"encoding/json"
	"testing"

	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_NormalizesRecords(t *testing.T) {
	doc := `[
		{"id": 1, "type": "mcq", "question": "Capital of the UK?", "options": ["A) Paris", "B) London"], "answer": "B"},
		{"id": "2", "type": "tf", "prompt": "Water is wet", "answer": true},
		{"id": 3, "type": "frq", "prompt": "Name the process", "answer": " photosynthesis "},
		{"id": 4, "type": "frq", "prompt": "Explain", "keywords": ["light", "energy"], "answer": "ignored"}
	]`

	questions, err := Decode([]byte(doc))
	require.NoError(t, err)
	require.Len(t, questions, 4)

	mcq := questions[0]
	assert.Equal(t, "1", mcq.ID)
	assert.Equal(t, "Capital of the UK?", mcq.Prompt)
	assert.Equal(t, []string{"Paris", "London"}, mcq.Options)
	assert.Equal(t, "London", mcq.ChoiceAnswer)

	tf := questions[1]
	assert.Equal(t, models.TrueFalse, tf.Type)
	assert.True(t, tf.BoolAnswer)

	assert.Equal(t, []string{"photosynthesis"}, questions[2].Keywords)
	assert.Equal(t, []string{"light", "energy"}, questions[3].Keywords)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode([]byte(`{"not": "a list"`))
	assert.Error(t, err)
}

func TestDecode_LetterOutOfRange(t *testing.T) {
	questions, err := Decode([]byte(`[{"id": 1, "type": "mcq", "prompt": "p", "options": ["A) one"], "answer": "D"}]`))
	require.NoError(t, err)
	assert.Equal(t, "D", questions[0].ChoiceAnswer)
}

func TestNormalize_LowercaseLetterAnswer(t *testing.T) {
	prompt := "Pick"
	q, err := Normalize(models.RawQuestion{
		ID:      json.RawMessage(`"x"`),
		Type:    "MCQ",
		Prompt:  &prompt,
		Options: []string{"a) red", "b)green", "c. blue"},
		Answer:  json.RawMessage(`"c"`),
	})
	require.NoError(t, err)

	assert.Equal(t, models.MultipleChoice, q.Type)
	assert.Equal(t, []string{"red", "green", "blue"}, q.Options)
	assert.Equal(t, "blue", q.ChoiceAnswer)
}

func TestNormalize_TrueFalseStringAnswer(t *testing.T) {
	prompt := "p"
	q, err := Normalize(models.RawQuestion{ID: json.RawMessage(`7`), Type: "tf", Prompt: &prompt, Answer: json.RawMessage(`"False"`)})
	require.NoError(t, err)
	assert.False(t, q.BoolAnswer)

	_, err = Normalize(models.RawQuestion{ID: json.RawMessage(`8`), Type: "tf", Prompt: &prompt})
	assert.Error(t, err)
}

func TestStripOptionLabel(t *testing.T) {
	assert.Equal(t, "Paris", StripOptionLabel("A) Paris"))
	assert.Equal(t, "London", StripOptionLabel("b)London"))
	assert.Equal(t, "E) Rome", StripOptionLabel("E) Rome"))
	assert.Equal(t, "Alpha", StripOptionLabel("Alpha"))
}

func TestSanitize_HidesAnswers(t *testing.T) {
	questions := []*models.Question{
		{ID: "1", Type: models.MultipleChoice, Prompt: "p", Options: []string{"x", "y"}, ChoiceAnswer: "y"},
		{ID: "2", Type: models.FreeResponse, Prompt: "q", Keywords: []string{"secret"}, TextAnswer: "secret"},
	}

	out := Sanitize(questions)
	require.Len(t, out, 2)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "answer")
	assert.NotContains(t, string(raw), "secret")
	assert.Equal(t, []string{"x", "y"}, out[0].Options)

	out[0].Options[0] = "changed"
	assert.Equal(t, "x", questions[0].Options[0])
}

func TestPickRandom(t *testing.T) {
	pool := make([]*models.Question, 5)
	for i := range pool {
		pool[i] = &models.Question{ID: string(rune('a' + i))}
	}

	t.Run("more than available returns all", func(t *testing.T) {
		picked := PickRandom(pool, 10)
		require.Len(t, picked, 5)
		assert.ElementsMatch(t, IDs(pool), IDs(picked))
	})

	t.Run("subset has no duplicates", func(t *testing.T) {
		picked := PickRandom(pool, 3)
		require.Len(t, picked, 3)

		seen := map[string]bool{}
		for _, q := range picked {
			assert.False(t, seen[q.ID])
			seen[q.ID] = true
			assert.Contains(t, IDs(pool), q.ID)
		}
	})

	t.Run("pool untouched", func(t *testing.T) {
		before := IDs(pool)
		PickRandom(pool, 5)
		assert.Equal(t, before, IDs(pool))
	})

	t.Run("zero", func(t *testing.T) {
		assert.Empty(t, PickRandom(pool, 0))
	})
}

func TestFilter(t *testing.T) {
	pool := []*models.Question{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	got := Filter(pool, []string{"3", "1", "9"})
	assert.Equal(t, []string{"1", "3"}, IDs(got))
}

func TestQuestionMarshal_RoundTrip(t *testing.T) {
	questions := []*models.Question{
		{ID: "1", Type: models.TrueFalse, Prompt: "t", BoolAnswer: true},
		{ID: "2", Type: models.MultipleChoice, Prompt: "m", Options: []string{"a", "b"}, ChoiceAnswer: "b"},
		{ID: "3", Type: models.FreeResponse, Prompt: "f", Keywords: []string{"k"}},
	}

	data, err := json.Marshal(questions)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, questions, decoded)
}
