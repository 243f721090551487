package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nextin/internal/model"
)

// DefaultSnapshotID is the row key of the single board.
const DefaultSnapshotID = "main"

// GormSnapshotStore keeps the board document in one row of board_snapshots.
type GormSnapshotStore struct {
	db *gorm.DB
	id string
}

func NewGormSnapshotStore(db *gorm.DB, id string) *GormSnapshotStore {
	if id == "" {
		id = DefaultSnapshotID
	}
	return &GormSnapshotStore{db: db, id: id}
}

// Migrate creates the snapshot table when it does not exist.
func (s *GormSnapshotStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&model.BoardSnapshot{})
}

func (s *GormSnapshotStore) Load(ctx context.Context) (*model.Board, int64, error) {
	var row model.BoardSnapshot
	if err := s.db.WithContext(ctx).Where("id = ?", s.id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrNoSnapshot
		}
		return nil, 0, err
	}

	var board model.Board
	if err := json.Unmarshal(row.Document, &board); err != nil {
		return nil, 0, fmt.Errorf("decode snapshot %s: %w", s.id, err)
	}
	return &board, row.Version, nil
}

// Save upserts the snapshot row in a single statement.
func (s *GormSnapshotStore) Save(ctx context.Context, board *model.Board, version int64) error {
	doc, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("encode board: %w", err)
	}

	row := &model.BoardSnapshot{ID: s.id, Document: doc, Version: version}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "version", "updated_at"}),
	}).Create(row).Error
}
