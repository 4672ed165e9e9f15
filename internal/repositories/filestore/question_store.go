package filestore

import (
	"context"
	"fmt"

	"github.com/SAP-F-2025/quiz-service/internal/bank"
	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/SAP-F-2025/quiz-service/internal/validator"
)

// QuestionStore reads the question bank JSON array
type QuestionStore struct {
	path      string
	validator *validator.Validator
	logger    utils.Logger
}

func NewQuestionStore(path string, v *validator.Validator, logger utils.Logger) *QuestionStore {
	return &QuestionStore{path: path, validator: v, logger: logger}
}

// List loads and normalizes every question. A record that fails validation
// makes the whole bank unusable.
func (s *QuestionStore) List(ctx context.Context) ([]*models.Question, error) {
	data, err := readFile(s.path)
	if err != nil {
		return nil, err
	}

	questions, err := bank.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", repositories.ErrCorrupt, s.path, err)
	}

	for _, q := range questions {
		if err := s.validator.ValidateQuestion(q); err != nil {
			return nil, fmt.Errorf("%w: question %q: %v", repositories.ErrCorrupt, q.ID, err)
		}
	}
	if errs := s.validator.Question().ValidateBatch(questions); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s: %v", repositories.ErrCorrupt, s.path, errs)
	}

	s.logger.DebugContext(ctx, "Question bank loaded", "path", s.path, "count", len(questions))
	return questions, nil
}

func (s *QuestionStore) ReplaceAll(ctx context.Context, questions []*models.Question) error {
	if questions == nil {
		questions = []*models.Question{}
	}
	if err := writeJSON(s.path, questions); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Question bank replaced", "path", s.path, "count", len(questions))
	return nil
}
