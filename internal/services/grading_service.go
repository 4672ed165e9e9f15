package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/quiz-service/internal/events"
	"github.com/SAP-F-2025/quiz-service/internal/grading"
	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-service/pkg/monitoring"
)

// GradeRequest is the body of a quiz submission
type GradeRequest struct {
	QuizID  string                  `json:"quiz_id"`
	Answers []models.SubmissionItem `json:"answers"`
}

// GradingService scores submissions and records their outcome
type GradingService interface {
	Grade(ctx context.Context, req *GradeRequest) (*models.GradingResult, error)
	GetRubric(ctx context.Context) (models.Rubric, error)
}

type gradingService struct {
	repo           repositories.Repository
	quizzes        QuizService
	stats          StatsService
	eventPublisher events.EventPublisher
	logger         *slog.Logger
}

func NewGradingService(
	repo repositories.Repository,
	quizzes QuizService,
	stats StatsService,
	eventPublisher events.EventPublisher,
	logger *slog.Logger,
) GradingService {
	return &gradingService{
		repo:           repo,
		quizzes:        quizzes,
		stats:          stats,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Grade scores only questions that belong to the quiz. Nothing is recorded
// unless the quiz exists and grading succeeds.
func (s *gradingService) Grade(ctx context.Context, req *GradeRequest) (*models.GradingResult, error) {
	questions, err := s.quizzes.ResolveQuiz(ctx, req.QuizID)
	if err != nil {
		return nil, err
	}

	rubric, err := s.GetRubric(ctx)
	if err != nil {
		return nil, err
	}

	result, err := grading.Grade(questions, rubric, req.Answers)
	if err != nil {
		s.logger.Error("Grading failed", "quiz_id", req.QuizID, "error", err)
		return nil, fmt.Errorf("failed to grade quiz: %w", err)
	}

	if err := s.stats.RecordAttempt(ctx, req.QuizID, result); err != nil {
		return nil, err
	}
	if err := s.stats.UpdateQuestionStats(ctx, result.PerQuestion); err != nil {
		return nil, err
	}

	monitoring.ObserveSubmission(result.ScoreTotal, result.ScoreMax)
	event := events.NewQuizGradedEvent(req.QuizID, result.ScoreTotal, result.ScoreMax, len(result.PerQuestion), result.TimeSummarySeconds)
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event", "event_type", event.Type, "error", err)
	}

	s.logger.Info("Quiz graded",
		"quiz_id", req.QuizID,
		"score_total", result.ScoreTotal,
		"score_max", result.ScoreMax,
		"graded", len(result.PerQuestion))

	return result, nil
}

func (s *gradingService) GetRubric(ctx context.Context) (models.Rubric, error) {
	rubric, err := s.repo.Rubric().Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRubricUnavailable, err)
	}
	return rubric, nil
}
