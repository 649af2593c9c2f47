package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
)

const (
	lockTimeout   = 3 * time.Second
	lockRetryWait = 100 * time.Millisecond
)

// JSONStore keeps the collection in a single JSON document on disk.
//
// Reads never fail: a missing or unparsable file is reported as an empty
// collection. Saves write a sibling temp file and rename it into place, under
// an advisory file lock so concurrent saves never share the temp file.
type JSONStore struct {
	path string
	lock *flock.Flock
	mu   sync.Mutex
	log  *slog.Logger
}

func NewJSONStore(path string, logger *slog.Logger) *JSONStore {
	return &JSONStore{
		path: path,
		lock: flock.New(path + ".lock"),
		log:  logger,
	}
}

func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) LoadAll(_ context.Context) ([]Edition, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn("failed to read editions file, using empty collection", "path", s.path, "error", err)
		}
		return []Edition{}, nil
	}

	if len(data) == 0 {
		return []Edition{}, nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warn("failed to parse editions file, using empty collection", "path", s.path, "error", err)
		return []Edition{}, nil
	}

	if doc.Editions == nil {
		return []Edition{}, nil
	}
	return doc.Editions, nil
}

func (s *JSONStore) SaveAll(ctx context.Context, editions []Edition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if editions == nil {
		editions = []Edition{}
	}

	data, err := json.MarshalIndent(Document{Editions: editions}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal editions: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	locked, err := s.lock.TryLockContext(lockCtx, lockRetryWait)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return errors.New("could not acquire file lock")
	}
	defer func() { _ = s.lock.Unlock() }()

	tmpFile := s.path + ".tmp"
	if err := os.WriteFile(tmpFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpFile, s.path); err != nil {
		_ = os.Remove(tmpFile)
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return s.lock.Close()
}
