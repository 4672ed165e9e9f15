package filestore

import (
	"context"

	"github.com/SAP-F-2025/quiz-service/internal/models"
)

// RubricStore reads and writes the rubric JSON object as-is
type RubricStore struct {
	path string
}

func NewRubricStore(path string) *RubricStore {
	return &RubricStore{path: path}
}

func (s *RubricStore) Get(ctx context.Context) (models.Rubric, error) {
	rubric := models.Rubric{}
	if err := readJSON(s.path, &rubric); err != nil {
		return nil, err
	}
	return rubric, nil
}

func (s *RubricStore) Save(ctx context.Context, rubric models.Rubric) error {
	if rubric == nil {
		rubric = models.Rubric{}
	}
	return writeJSON(s.path, rubric)
}
