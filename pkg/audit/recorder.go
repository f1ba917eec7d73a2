// Package audit appends one record per successful verification to a
// comma-separated log file.
package audit

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sync"
	"time"
)

// Entry is one successful verification.
type Entry struct {
	UserID      string
	Email       string
	Timestamp   time.Time
	DisplayName string
}

// Recorder is an append-only sink for verification records.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// FileRecorder implements Recorder on a local append-only CSV file, one line
// per entry: userID, email, timestamp (RFC 3339), display name.
type FileRecorder struct {
	mu   sync.Mutex
	file *os.File
}

// NewFileRecorder opens (or creates) the audit log at path for appending.
func NewFileRecorder(path string) (*FileRecorder, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	return &FileRecorder{file: file}, nil
}

// Record appends one entry.
func (r *FileRecorder) Record(ctx context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	w := csv.NewWriter(r.file)
	if err := w.Write([]string{
		entry.UserID,
		entry.Email,
		entry.Timestamp.Format(time.RFC3339),
		entry.DisplayName,
	}); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush audit record: %w", err)
	}
	return nil
}

// Close closes the underlying file.
func (r *FileRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.file.Close()
}
