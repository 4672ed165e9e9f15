package filestore

import (
	"context"

	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
)

// StatsStore holds the per-question counters
type StatsStore struct {
	path string
}

func NewStatsStore(path string) *StatsStore {
	return &StatsStore{path: path}
}

// Load returns empty stats when the file does not exist yet
func (s *StatsStore) Load(ctx context.Context) (models.QuestionStats, error) {
	stats := models.QuestionStats{}
	if err := readJSON(s.path, &stats); err != nil {
		if repositories.IsNotFoundError(err) {
			return models.QuestionStats{}, nil
		}
		return nil, err
	}
	if stats == nil {
		stats = models.QuestionStats{}
	}
	return stats, nil
}

func (s *StatsStore) Save(ctx context.Context, stats models.QuestionStats) error {
	if stats == nil {
		stats = models.QuestionStats{}
	}
	return writeJSON(s.path, stats)
}
