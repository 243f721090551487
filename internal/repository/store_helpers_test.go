package repository_test

import (
	"context"
	"errors"
	"io"
	"sync"

	"nextin/internal/model"
	"nextin/internal/repository"

	log "github.com/sirupsen/logrus"
)

var errDiskFull = errors.New("disk full")

// memStore is an in-memory SnapshotStore that counts writes and can be
// told to fail.
type memStore struct {
	mu      sync.Mutex
	board   *model.Board
	version int64
	saves   int
	failing bool
	loadErr error
}

func (s *memStore) Load(ctx context.Context) (*model.Board, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, 0, s.loadErr
	}
	if s.board == nil {
		return nil, 0, repository.ErrNoSnapshot
	}
	return s.board.Clone(), s.version, nil
}

func (s *memStore) Save(ctx context.Context, board *model.Board, version int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return errDiskFull
	}
	s.board = board.Clone()
	s.version = version
	s.saves++
	return nil
}

func (s *memStore) setFailing(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = v
}

func (s *memStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func quietLogger() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}
