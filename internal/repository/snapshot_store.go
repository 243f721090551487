package repository

import (
	"context"

	"nextin/internal/model"
)

// SnapshotStore persists the whole board as one document.
// Save must replace the previous snapshot atomically: a concurrent or
// later Load sees either the old board or the new one, never a mix.
type SnapshotStore interface {
	Load(ctx context.Context) (*model.Board, int64, error)
	Save(ctx context.Context, board *model.Board, version int64) error
}
