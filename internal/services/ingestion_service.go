package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/quiz-service/internal/events"
	"github.com/SAP-F-2025/quiz-service/internal/ingest"
	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-service/internal/validator"
	"github.com/SAP-F-2025/quiz-service/pkg/monitoring"
)

const debugSnippetLength = 400

// IngestionService replaces the question bank or the rubric from an uploaded document
type IngestionService interface {
	Ingest(ctx context.Context, kind, filename string, data []byte) (*IngestionResult, error)
}

type IngestionResult struct {
	Status string `json:"status"`
	Type   string `json:"type"`
	Count  int    `json:"count"`
}

type ingestionService struct {
	repo           repositories.Repository
	eventPublisher events.EventPublisher
	logger         *slog.Logger
	validator      *validator.Validator
}

func NewIngestionService(
	repo repositories.Repository,
	eventPublisher events.EventPublisher,
	logger *slog.Logger,
	validator *validator.Validator,
) IngestionService {
	return &ingestionService{
		repo:           repo,
		eventPublisher: eventPublisher,
		logger:         logger,
		validator:      validator,
	}
}

// Ingest overwrites the target store only when the document yields at least
// one record. An empty kind means questions.
func (s *ingestionService) Ingest(ctx context.Context, kind, filename string, data []byte) (*IngestionResult, error) {
	if kind == "" {
		kind = validator.UploadKindQuestions
	}
	if kind != validator.UploadKindQuestions && kind != validator.UploadKindRubric {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUploadKind, kind)
	}

	s.logger.Info("Ingesting document", "kind", kind, "filename", filename, "size", len(data))

	text, err := ingest.ExtractText(filename, data)
	if err != nil {
		monitoring.ObserveIngestion(kind, "error")
		return nil, &IngestionError{Kind: kind, Err: fmt.Errorf("%w: %v", ErrUnreadableDocument, err)}
	}

	var result *IngestionResult
	switch kind {
	case validator.UploadKindQuestions:
		result, err = s.ingestQuestions(ctx, filename, text)
	case validator.UploadKindRubric:
		result, err = s.ingestRubric(ctx, filename, text)
	}

	if err != nil {
		if IsClientError(err) {
			monitoring.ObserveIngestion(kind, "rejected")
			return nil, err
		}
		monitoring.ObserveIngestion(kind, "error")
		return nil, &IngestionError{Kind: kind, Snippet: ingest.Snippet(text, debugSnippetLength), Err: err}
	}

	monitoring.ObserveIngestion(kind, "success")
	return result, nil
}

func (s *ingestionService) ingestQuestions(ctx context.Context, filename, text string) (*IngestionResult, error) {
	questions := s.keepValid(ingest.ParseQuestions(text))
	if len(questions) == 0 {
		return nil, ErrNoQuestionsParsed
	}

	if err := s.repo.Question().ReplaceAll(ctx, questions); err != nil {
		return nil, fmt.Errorf("failed to replace question bank: %w", err)
	}

	s.publish(ctx, events.NewQuestionBankReplacedEvent(filename, len(questions)))
	s.logger.Info("Question bank replaced from upload", "filename", filename, "count", len(questions))

	return &IngestionResult{Status: "ok", Type: validator.UploadKindQuestions, Count: len(questions)}, nil
}

func (s *ingestionService) ingestRubric(ctx context.Context, filename, text string) (*IngestionResult, error) {
	rubric := ingest.ParseRubric(text)
	count := rubric.FeedbackCount()
	if count == 0 {
		return nil, ErrNoRubricParsed
	}

	if err := s.repo.Rubric().Save(ctx, rubric); err != nil {
		return nil, fmt.Errorf("failed to replace rubric: %w", err)
	}

	s.publish(ctx, events.NewRubricReplacedEvent(filename, count))
	s.logger.Info("Rubric replaced from upload", "filename", filename, "feedback_entries", count)

	return &IngestionResult{Status: "ok", Type: validator.UploadKindRubric, Count: count}, nil
}

// keepValid drops parsed questions the bank could not load back, and every
// repeat of an ID after its first occurrence.
func (s *ingestionService) keepValid(parsed []*models.Question) []*models.Question {
	seen := make(map[string]bool, len(parsed))
	kept := make([]*models.Question, 0, len(parsed))

	for _, q := range parsed {
		if seen[q.ID] {
			s.logger.Warn("Dropping duplicate question", "id", q.ID)
			continue
		}
		if err := s.validator.ValidateQuestion(q); err != nil {
			s.logger.Warn("Dropping invalid question", "id", q.ID, "error", err)
			continue
		}
		seen[q.ID] = true
		kept = append(kept, q)
	}
	return kept
}

func (s *ingestionService) publish(ctx context.Context, event *events.QuizEvent) {
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish event", "event_type", event.Type, "error", err)
	}
}
