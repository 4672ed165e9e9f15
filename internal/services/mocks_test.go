package services

import (
	"context"
	"io"
	"log/slog"

	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"github.com/stretchr/testify/mock"
)

// MockQuestionRepository is a mock implementation of QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) List(ctx context.Context) ([]*models.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Question), args.Error(1)
}

func (m *MockQuestionRepository) ReplaceAll(ctx context.Context, questions []*models.Question) error {
	args := m.Called(ctx, questions)
	return args.Error(0)
}

// MockRubricRepository is a mock implementation of RubricRepository
type MockRubricRepository struct {
	mock.Mock
}

func (m *MockRubricRepository) Get(ctx context.Context) (models.Rubric, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.Rubric), args.Error(1)
}

func (m *MockRubricRepository) Save(ctx context.Context, rubric models.Rubric) error {
	args := m.Called(ctx, rubric)
	return args.Error(0)
}

// MockStatsRepository is a mock implementation of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) Load(ctx context.Context) (models.QuestionStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(models.QuestionStats), args.Error(1)
}

func (m *MockStatsRepository) Save(ctx context.Context, stats models.QuestionStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

// MockResultLogRepository is a mock implementation of ResultLogRepository
type MockResultLogRepository struct {
	mock.Mock
}

func (m *MockResultLogRepository) Append(ctx context.Context, record models.AttemptRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// MockRepository groups the mocks behind the Repository interface
type MockRepository struct {
	question  *MockQuestionRepository
	rubric    *MockRubricRepository
	stats     *MockStatsRepository
	resultLog *MockResultLogRepository
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		question:  &MockQuestionRepository{},
		rubric:    &MockRubricRepository{},
		stats:     &MockStatsRepository{},
		resultLog: &MockResultLogRepository{},
	}
}

func (m *MockRepository) Question() repositories.QuestionRepository   { return m.question }
func (m *MockRepository) Rubric() repositories.RubricRepository       { return m.rubric }
func (m *MockRepository) Stats() repositories.StatsRepository         { return m.stats }
func (m *MockRepository) ResultLog() repositories.ResultLogRepository { return m.resultLog }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleBank() []*models.Question {
	return []*models.Question{
		{ID: "1", Type: models.TrueFalse, Prompt: "Sky is blue", BoolAnswer: true},
		{ID: "2", Type: models.MultipleChoice, Prompt: "Capital of the UK?", Options: []string{"Paris", "London"}, ChoiceAnswer: "London"},
		{ID: "3", Type: models.FreeResponse, Prompt: "Describe photosynthesis", Keywords: []string{"light", "chlorophyll", "glucose", "oxygen"}},
	}
}

func sampleRubric() models.Rubric {
	r := models.NewRubric()
	r[models.TrueFalse].Feedback[models.FeedbackCorrect] = "Correct"
	r[models.TrueFalse].Feedback[models.FeedbackIncorrect] = "Incorrect"
	r[models.MultipleChoice].Feedback[models.FeedbackCorrect] = "Correct"
	r[models.MultipleChoice].Feedback[models.FeedbackIncorrect] = "Incorrect"
	r[models.FreeResponse].Feedback[models.FeedbackHigh] = "Great"
	r[models.FreeResponse].Feedback[models.FeedbackMedium] = "Partial"
	r[models.FreeResponse].Feedback[models.FeedbackLow] = "Missing key ideas"
	return r
}
