// Package filestore keeps the quiz data in flat files under a data directory.
//
// Every write replaces the whole file. There is no locking between
// read-modify-write cycles, so two concurrent stats updates can lose one of
// the increments (last writer wins).
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/SAP-F-2025/quiz-service/internal/repositories"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/SAP-F-2025/quiz-service/internal/validator"
)

// Paths locates each file the service persists.
type Paths struct {
	QuestionBank  string
	Rubric        string
	ResultsLog    string
	QuestionStats string
}

type fileRepository struct {
	question  *QuestionStore
	rubric    *RubricStore
	stats     *StatsStore
	resultLog *ResultLog
}

// NewRepository wires the file-backed stores together
func NewRepository(paths Paths, v *validator.Validator, logger utils.Logger) repositories.Repository {
	return &fileRepository{
		question:  NewQuestionStore(paths.QuestionBank, v, logger),
		rubric:    NewRubricStore(paths.Rubric),
		stats:     NewStatsStore(paths.QuestionStats),
		resultLog: NewResultLog(paths.ResultsLog),
	}
}

func (r *fileRepository) Question() repositories.QuestionRepository   { return r.question }
func (r *fileRepository) Rubric() repositories.RubricRepository       { return r.rubric }
func (r *fileRepository) Stats() repositories.StatsRepository         { return r.stats }
func (r *fileRepository) ResultLog() repositories.ResultLogRepository { return r.resultLog }

// readFile maps a missing file to repositories.ErrNotFound.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", repositories.ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func readJSON(path string, dest interface{}) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("%w: %s: %v", repositories.ErrCorrupt, path, err)
	}
	return nil
}

// writeJSON replaces path with the indented JSON encoding of value. The data
// goes to a temporary file first so readers never see a half-written file.
func writeJSON(path string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
