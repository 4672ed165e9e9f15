package filestore

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/SAP-F-2025/quiz-service/internal/models"
)

const timestampLayout = "2006-01-02T15:04:05"

var resultLogHeader = []string{"timestamp", "quiz_id", "score_total", "score_max", "time_ms", "time_seconds"}

// ResultLog appends one CSV row per graded attempt
type ResultLog struct {
	path string
	mu   sync.Mutex
}

func NewResultLog(path string) *ResultLog {
	return &ResultLog{path: path}
}

// Append writes the header only when it creates the file
func (l *ResultLog) Append(ctx context.Context, record models.AttemptRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create results log directory: %w", err)
	}

	_, statErr := os.Stat(l.path)
	isNew := os.IsNotExist(statErr)

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open results log: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if isNew {
		if err := w.Write(resultLogHeader); err != nil {
			return fmt.Errorf("failed to write results log header: %w", err)
		}
	}
	if err := w.Write(attemptRow(record)); err != nil {
		return fmt.Errorf("failed to write results log row: %w", err)
	}
	w.Flush()
	return w.Error()
}

func attemptRow(r models.AttemptRecord) []string {
	return []string{
		r.Timestamp.Format(timestampLayout),
		r.QuizID,
		formatFloat(r.ScoreTotal),
		formatFloat(r.ScoreMax),
		strconv.FormatInt(r.TimeMs, 10),
		formatFloat(r.TimeSeconds),
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
