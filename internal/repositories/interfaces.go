package repositories

import (
	"context"

	"github.com/SAP-F-2025/quiz-service/internal/models"
)

// QuestionRepository loads the question bank and replaces it wholesale
type QuestionRepository interface {
	List(ctx context.Context) ([]*models.Question, error)
	ReplaceAll(ctx context.Context, questions []*models.Question) error
}

// RubricRepository reads and overwrites the rubric
type RubricRepository interface {
	Get(ctx context.Context) (models.Rubric, error)
	Save(ctx context.Context, rubric models.Rubric) error
}

// StatsRepository reads and overwrites the cumulative per-question counters.
// A missing store reads as empty stats.
type StatsRepository interface {
	Load(ctx context.Context) (models.QuestionStats, error)
	Save(ctx context.Context, stats models.QuestionStats) error
}

// ResultLogRepository appends attempt summaries to the results log
type ResultLogRepository interface {
	Append(ctx context.Context, record models.AttemptRecord) error
}

// Repository groups all data access used by the services
type Repository interface {
	Question() QuestionRepository
	Rubric() RubricRepository
	Stats() StatsRepository
	ResultLog() ResultLogRepository
}
