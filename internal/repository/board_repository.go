package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"nextin/internal/model"
	"nextin/internal/move"
)

// BoardRepository owns the canonical board. Every mutation is a single
// read-modify-write-persist critical section behind one mutex; a mutation
// becomes visible only after the snapshot store accepted it.
type BoardRepository struct {
	mu      sync.Mutex
	store   SnapshotStore
	board   *model.Board
	version int64
	policy  move.Policy
	logger  *log.Logger
	newID   func() string
}

type Option func(*BoardRepository)

// WithMovePolicy sets how stale source indexes are handled by MoveIssue.
func WithMovePolicy(p move.Policy) Option {
	return func(r *BoardRepository) { r.policy = p }
}

func WithLogger(l *log.Logger) Option {
	return func(r *BoardRepository) { r.logger = l }
}

// WithIDGenerator replaces the uuid generator used for new issues.
func WithIDGenerator(fn func() string) Option {
	return func(r *BoardRepository) { r.newID = fn }
}

func NewBoardRepository(store SnapshotStore, opts ...Option) *BoardRepository {
	r := &BoardRepository{
		store:  store,
		board:  model.DefaultBoard(),
		policy: move.PolicyResolve,
		logger: log.StandardLogger(),
		newID:  func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load rehydrates the board from the snapshot store. Any read, decode or
// validation failure falls back to the default board instead of failing.
func (r *BoardRepository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	board, version, err := r.store.Load(ctx)
	switch {
	case errors.Is(err, ErrNoSnapshot):
		r.logger.Info("No board snapshot found, starting with the default board")
		board, version = model.DefaultBoard(), 0
	case err != nil:
		r.logger.WithError(err).Warn("Failed to read board snapshot, starting with the default board")
		board, version = model.DefaultBoard(), 0
	default:
		if verr := board.Validate(); verr != nil {
			r.logger.WithError(verr).Warn("Board snapshot is inconsistent, starting with the default board")
			board, version = model.DefaultBoard(), 0
		}
	}

	r.board = board
	r.version = version
	r.logger.WithFields(log.Fields{
		"issues":  len(board.Issues),
		"version": version,
	}).Info("Board loaded")
	return nil
}

// Get returns a deep copy of the canonical board.
func (r *BoardRepository) Get(ctx context.Context) (*model.Board, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.board.Clone(), nil
}

// Snapshot returns a copy of the board together with its version.
func (r *BoardRepository) Snapshot(ctx context.Context) (*model.Board, int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.board.Clone(), r.version
}

func (r *BoardRepository) Version() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.version
}

// GetIssue returns a copy of one issue record.
func (r *BoardRepository) GetIssue(ctx context.Context, id string) (*model.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	issue, ok := r.board.Issues[id]
	if !ok {
		return nil, ErrIssueNotFound
	}
	cp := *issue
	return &cp, nil
}

func (r *BoardRepository) Stats(ctx context.Context) (model.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.board.Stats(), nil
}

// CreateIssue adds a new issue at the head of the default column and
// returns it with the version it was committed at.
func (r *BoardRepository) CreateIssue(ctx context.Context, fields model.IssueFields) (*model.Issue, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	issue, err := model.NewIssue(r.newID(), fields)
	if err != nil {
		return nil, r.version, err
	}

	next := r.board.Clone()
	col, ok := next.Columns[model.DefaultColumnID]
	if !ok {
		return nil, r.version, fmt.Errorf("%w: default column %q missing", model.ErrInvalidBoard, model.DefaultColumnID)
	}
	next.Issues[issue.ID] = issue
	col.IssueIDs = append([]string{issue.ID}, col.IssueIDs...)

	version, err := r.commit(ctx, next, "create", issue.ID)
	if err != nil {
		return nil, version, err
	}
	cp := *issue
	return &cp, version, nil
}

// UpdateIssue merges patch over the issue. Column membership is untouched.
func (r *BoardRepository) UpdateIssue(ctx context.Context, id string, patch model.IssuePatch) (*model.Issue, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.board.Issues[id]
	if !ok {
		return nil, r.version, ErrIssueNotFound
	}
	updated, err := current.Apply(patch)
	if err != nil {
		return nil, r.version, err
	}

	next := r.board.Clone()
	next.Issues[id] = updated

	version, err := r.commit(ctx, next, "update", id)
	if err != nil {
		return nil, version, err
	}
	cp := *updated
	return &cp, version, nil
}

// DeleteIssue removes the issue record and every column reference to it.
func (r *BoardRepository) DeleteIssue(ctx context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.board.Issues[id]; !ok {
		return r.version, ErrIssueNotFound
	}

	next := r.board.Clone()
	delete(next.Issues, id)
	next.RemoveIssueRefs(id)

	return r.commit(ctx, next, "delete", id)
}

// MoveIssue relocates one issue. Moves that leave the board unchanged are
// not persisted and report the current version.
func (r *BoardRepository) MoveIssue(ctx context.Context, in move.Intent) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.board.Clone()
	changed, err := move.Apply(next, in, r.policy)
	if err != nil {
		return r.version, err
	}
	if !changed {
		return r.version, nil
	}

	return r.commit(ctx, next, "move", in.IssueID)
}

// commit persists next and swaps it in, returning the version that is
// canonical afterwards. Caller holds r.mu.
func (r *BoardRepository) commit(ctx context.Context, next *model.Board, op, issueID string) (int64, error) {
	version := r.version + 1
	if err := r.store.Save(ctx, next, version); err != nil {
		r.logger.WithError(err).WithFields(log.Fields{
			"op":    op,
			"issue": issueID,
		}).Error("Failed to persist board")
		return r.version, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	r.board = next
	r.version = version
	r.logger.WithFields(log.Fields{
		"op":      op,
		"issue":   issueID,
		"version": version,
	}).Debug("Board committed")
	return version, nil
}
