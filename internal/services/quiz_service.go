package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/quiz-service/internal/bank"
	"github.com/SAP-F-2025/quiz-service/internal/events"
	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-service/internal/session"
	"github.com/SAP-F-2025/quiz-service/pkg/monitoring"
)

// QuizService hands out randomly sampled quizzes and remembers what was asked
type QuizService interface {
	CreateQuiz(ctx context.Context, count int) (*models.Quiz, error)
	// ResolveQuiz returns the questions of a quiz that are still in the bank
	ResolveQuiz(ctx context.Context, quizID string) ([]*models.Question, error)
}

type quizService struct {
	repo           repositories.Repository
	sessions       session.Store
	stats          StatsService
	eventPublisher events.EventPublisher
	logger         *slog.Logger
	defaultSize    int
}

func NewQuizService(
	repo repositories.Repository,
	sessions session.Store,
	stats StatsService,
	eventPublisher events.EventPublisher,
	logger *slog.Logger,
	defaultSize int,
) QuizService {
	return &quizService{
		repo:           repo,
		sessions:       sessions,
		stats:          stats,
		eventPublisher: eventPublisher,
		logger:         logger,
		defaultSize:    defaultSize,
	}
}

// CreateQuiz samples count questions; a non-positive count uses the default size
func (s *quizService) CreateQuiz(ctx context.Context, count int) (*models.Quiz, error) {
	if count <= 0 {
		count = s.defaultSize
	}

	questions, err := s.loadBank(ctx)
	if err != nil {
		return nil, err
	}

	picked := bank.PickRandom(questions, count)
	ids := bank.IDs(picked)

	quizID, err := s.sessions.Create(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to create quiz session: %w", err)
	}

	clientQuestions := bank.Sanitize(picked)
	summaries, err := s.stats.Summaries(ctx, ids)
	if err != nil {
		// stats never block quiz creation
		s.logger.Warn("Failed to attach question stats", "error", err)
	} else {
		for i := range clientQuestions {
			summary := summaries[clientQuestions[i].ID]
			clientQuestions[i].Stats = &summary
		}
	}

	monitoring.QuizzesCreated.Inc()
	s.publish(ctx, events.NewQuizCreatedEvent(quizID, ids))

	s.logger.Info("Quiz created", "quiz_id", quizID, "questions", len(ids))
	return &models.Quiz{QuizID: quizID, Questions: clientQuestions}, nil
}

func (s *quizService) ResolveQuiz(ctx context.Context, quizID string) ([]*models.Question, error) {
	if quizID == "" {
		return nil, ErrQuizNotFound
	}

	ids, err := s.sessions.Resolve(ctx, quizID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to resolve quiz session: %w", err)
	}

	questions, err := s.loadBank(ctx)
	if err != nil {
		return nil, err
	}

	return bank.Filter(questions, ids), nil
}

func (s *quizService) loadBank(ctx context.Context) ([]*models.Question, error) {
	questions, err := s.repo.Question().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuestionBankUnavailable, err)
	}
	return questions, nil
}

func (s *quizService) publish(ctx context.Context, event *events.QuizEvent) {
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event", "event_type", event.Type, "error", err)
	}
}
