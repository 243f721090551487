package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"nextin/internal/model"
)

// fileDocument is the on-disk layout: the board keys plus a version counter.
type fileDocument struct {
	Version int64 `json:"version"`
	*model.Board
}

// FileSnapshotStore keeps the board in a single JSON file.
type FileSnapshotStore struct {
	path string
}

func NewFileSnapshotStore(path string) *FileSnapshotStore {
	return &FileSnapshotStore{path: path}
}

func (s *FileSnapshotStore) Path() string {
	return s.path
}

func (s *FileSnapshotStore) Load(ctx context.Context) (*model.Board, int64, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, ErrNoSnapshot
		}
		return nil, 0, fmt.Errorf("read %s: %w", s.path, err)
	}

	doc := fileDocument{Board: &model.Board{}}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return doc.Board, doc.Version, nil
}

// Save writes the board to a temp file in the same directory and renames
// it over the target, so readers never observe a partial document.
func (s *FileSnapshotStore) Save(ctx context.Context, board *model.Board, version int64) error {
	raw, err := json.MarshalIndent(fileDocument{Version: version, Board: board}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode board: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
