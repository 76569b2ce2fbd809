package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/AndySiamas/LayoutLens/pkg/errors"
)

// File names inside a run directory.
const (
	ReportTextFile = "validation_error.txt"
	ReportJSONFile = "report.json"
)

// FileStore writes each run to its own directory under a base directory.
type FileStore struct {
	mu      sync.Mutex
	baseDir string
}

// NewFileStore creates a file store rooted at baseDir, creating it if needed.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "runs directory is empty")
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create runs dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

// Dir returns the base directory.
func (s *FileStore) Dir() string { return s.baseDir }

// RunDir returns the directory a run is written to.
func (s *FileStore) RunDir(runID string) string {
	return filepath.Join(s.baseDir, runID)
}

// Save creates the run directory and writes the report text and JSON.
// The text file is skipped for accepted runs.
func (s *FileStore) Save(ctx context.Context, rec Record) error {
	if !validRunID(rec.RunID) {
		return errors.New(errors.ErrCodeInvalidInput, "invalid run id %q", rec.RunID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := s.RunDir(rec.RunID)
	if err := os.Mkdir(dir, 0755); err != nil {
		if os.IsExist(err) {
			return errors.New(errors.ErrCodeInvalidInput, "run %s already saved", rec.RunID)
		}
		return fmt.Errorf("create run dir: %w", err)
	}

	if rec.Text != "" {
		if err := os.WriteFile(filepath.Join(dir, ReportTextFile), []byte(rec.Text), 0644); err != nil {
			return fmt.Errorf("write report text: %w", err)
		}
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ReportJSONFile), data, 0644); err != nil {
		return fmt.Errorf("write report json: %w", err)
	}
	return nil
}

// Get reads a run back from report.json.
func (s *FileStore) Get(ctx context.Context, runID string) (*Record, error) {
	if !validRunID(runID) {
		return nil, errors.New(errors.ErrCodeNotFound, "run %q not found", runID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.RunDir(runID), ReportJSONFile))
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeNotFound, "run %q not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse record: %w", err)
	}
	return &rec, nil
}

// Close does nothing for file store.
func (s *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)
