package services

import (
	"log/slog"

	"github.com/SAP-F-2025/quiz-service/internal/events"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-service/internal/session"
	"github.com/SAP-F-2025/quiz-service/internal/validator"
)

// ServiceManager exposes every service the HTTP layer depends on
type ServiceManager interface {
	Quiz() QuizService
	Grading() GradingService
	Stats() StatsService
	Ingestion() IngestionService
}

type ServiceOptions struct {
	Repository     repositories.Repository
	Sessions       session.Store
	EventPublisher events.EventPublisher
	Validator      *validator.Validator
	Logger         *slog.Logger
	QuizSize       int
}

type serviceManager struct {
	quiz      QuizService
	grading   GradingService
	stats     StatsService
	ingestion IngestionService
}

func NewServiceManager(opts ServiceOptions) ServiceManager {
	stats := NewStatsService(opts.Repository, opts.Logger)
	quiz := NewQuizService(opts.Repository, opts.Sessions, stats, opts.EventPublisher, opts.Logger, opts.QuizSize)

	return &serviceManager{
		quiz:      quiz,
		grading:   NewGradingService(opts.Repository, quiz, stats, opts.EventPublisher, opts.Logger),
		stats:     stats,
		ingestion: NewIngestionService(opts.Repository, opts.EventPublisher, opts.Logger, opts.Validator),
	}
}

func (m *serviceManager) Quiz() QuizService           { return m.quiz }
func (m *serviceManager) Grading() GradingService     { return m.grading }
func (m *serviceManager) Stats() StatsService         { return m.stats }
func (m *serviceManager) Ingestion() IngestionService { return m.ingestion }
