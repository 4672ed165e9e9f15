package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SAP-F-2025/quiz-service/internal/models"
	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"github.com/xuri/excelize/v2"
)

// StatsService records attempts and keeps the per-question counters
type StatsService interface {
	GetStats(ctx context.Context) (models.QuestionStats, error)
	Summaries(ctx context.Context, questionIDs []string) (map[string]models.StatSummary, error)

	UpdateQuestionStats(ctx context.Context, perQuestion []models.QuestionResult) error
	RecordAttempt(ctx context.Context, quizID string, result *models.GradingResult) error

	ExportToExcel(ctx context.Context) ([]byte, error)
}

type statsService struct {
	repo   repositories.Repository
	logger *slog.Logger
	now    func() time.Time
}

func NewStatsService(repo repositories.Repository, logger *slog.Logger) StatsService {
	return &statsService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *statsService) GetStats(ctx context.Context) (models.QuestionStats, error) {
	stats, err := s.repo.Stats().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load question stats: %w", err)
	}
	return stats, nil
}

// Summaries returns a summary for every requested ID, unseen ones included
func (s *statsService) Summaries(ctx context.Context, questionIDs []string) (map[string]models.StatSummary, error) {
	stats, err := s.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make(map[string]models.StatSummary, len(questionIDs))
	for _, id := range questionIDs {
		summaries[id] = stats[id].Summary()
	}
	return summaries, nil
}

// UpdateQuestionStats rewrites the whole stats file. Concurrent updates race
// and the last writer wins.
func (s *statsService) UpdateQuestionStats(ctx context.Context, perQuestion []models.QuestionResult) error {
	stats, err := s.GetStats(ctx)
	if err != nil {
		return err
	}

	for _, r := range perQuestion {
		stat := stats[r.ID]
		stat.Seen++
		if r.FullCredit() {
			stat.Correct++
		} else {
			stat.Incorrect++
		}
		stats[r.ID] = stat
	}

	if err := s.repo.Stats().Save(ctx, stats); err != nil {
		return fmt.Errorf("failed to save question stats: %w", err)
	}

	s.logger.Debug("Question stats updated", "questions", len(perQuestion))
	return nil
}

func (s *statsService) RecordAttempt(ctx context.Context, quizID string, result *models.GradingResult) error {
	record := models.AttemptRecord{
		Timestamp:   s.now(),
		QuizID:      quizID,
		ScoreTotal:  result.ScoreTotal,
		ScoreMax:    result.ScoreMax,
		TimeMs:      result.TimeSummaryMs,
		TimeSeconds: result.TimeSummarySeconds,
	}

	if err := s.repo.ResultLog().Append(ctx, record); err != nil {
		return fmt.Errorf("failed to record attempt: %w", err)
	}
	return nil
}

// ===== EXPORT OPERATIONS =====

func (s *statsService) ExportToExcel(ctx context.Context) ([]byte, error) {
	stats, err := s.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Question Stats"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create Excel sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	headers := []interface{}{"Question ID", "Seen", "Correct", "Incorrect", "Correct Rate"}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write Excel header: %w", err)
	}

	for i, id := range ids {
		summary := stats[id].Summary()
		row := []interface{}{id, summary.Seen, summary.Correct, summary.Incorrect, nil}
		if summary.CorrectRate != nil {
			row[4] = *summary.CorrectRate
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write Excel row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	s.logger.Info("Question stats exported", "questions", len(ids))
	return buf.Bytes(), nil
}
