package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"nextin/internal/model"
	"nextin/internal/move"
)

// ErrNotLoaded is returned when the adapter has no local board yet.
var ErrNotLoaded = errors.New("board not loaded")

// Adapter holds the locally rendered board. Moves are applied to it
// immediately and confirmed in the background; a rejected move is
// reconciled by replacing the local board with a fresh server copy.
type Adapter struct {
	api    BoardAPI
	logger *log.Logger

	mu    sync.Mutex
	board *model.Board
	rev   uint64

	// renderMu orders onChange calls; rendered is the newest rev delivered.
	renderMu sync.Mutex
	rendered uint64

	onChange func(*model.Board)
	notify   func(error)

	fetches  singleflight.Group
	inflight sync.WaitGroup
}

type AdapterOption func(*Adapter)

// OnChange registers the render hook. It receives a private copy of the
// board every time the local state is replaced. Calls are serialised and
// never step back to an older state; fn must not call Drop itself.
func OnChange(fn func(*model.Board)) AdapterOption {
	return func(a *Adapter) { a.onChange = fn }
}

// OnNotice registers the hook for user-facing failure notices.
func OnNotice(fn func(error)) AdapterOption {
	return func(a *Adapter) { a.notify = fn }
}

func WithAdapterLogger(l *log.Logger) AdapterOption {
	return func(a *Adapter) { a.logger = l }
}

func NewAdapter(api BoardAPI, opts ...AdapterOption) *Adapter {
	a := &Adapter{
		api:      api,
		logger:   log.StandardLogger(),
		onChange: func(*model.Board) {},
		notify:   func(error) {},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Board returns a copy of the local board, or nil before the first Refresh.
func (a *Adapter) Board() *model.Board {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.board == nil {
		return nil
	}
	return a.board.Clone()
}

// Stats summarises the local board.
func (a *Adapter) Stats() model.Stats {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.board == nil {
		return model.Stats{ByAssignee: map[string]int{}}
	}
	return a.board.Stats()
}

// Refresh replaces the local board with the server's. Concurrent calls
// share one request. The shared fetch is detached from ctx, so a caller
// that gives up stops waiting without aborting the fetch for the others.
func (a *Adapter) Refresh(ctx context.Context) error {
	fetchCtx := context.WithoutCancel(ctx)
	ch := a.fetches.DoChan("board", func() (any, error) {
		board, err := a.api.FetchBoard(fetchCtx)
		if err != nil {
			return nil, err
		}
		a.replace(board)
		return nil, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			a.notify(fmt.Errorf("failed to fetch board: %w", res.Err))
		}
		return res.Err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Drop handles one drag-release. The returned channel yields exactly one
// value: nil once the server confirmed the move (or for a no-op), or the
// error that caused the local board to be refetched.
func (a *Adapter) Drop(ctx context.Context, in move.Intent) <-chan error {
	done := make(chan error, 1)
	if move.IsNoop(in) {
		done <- nil
		return done
	}

	a.mu.Lock()
	if a.board == nil {
		a.mu.Unlock()
		done <- ErrNotLoaded
		return done
	}
	next := a.board.Clone()
	changed, err := move.Apply(next, in, move.PolicyResolve)
	var rev uint64
	if err == nil && changed {
		a.board = next
		a.rev++
		rev = a.rev
	}
	a.mu.Unlock()

	if err != nil {
		// The local view cannot express the move; it is stale, so resync.
		a.logger.WithError(err).WithField("issue", in.IssueID).Warn("Optimistic move rejected locally")
		a.inflight.Add(1)
		go func() {
			defer a.inflight.Done()
			_ = a.Refresh(context.WithoutCancel(ctx))
			done <- err
		}()
		return done
	}
	if changed {
		a.publish(next.Clone(), rev)
	}

	a.inflight.Add(1)
	go func() {
		defer a.inflight.Done()
		if err := a.api.MoveIssue(ctx, in); err != nil {
			a.logger.WithError(err).WithField("issue", in.IssueID).Warn("Move rejected, refetching board")
			_ = a.Refresh(context.WithoutCancel(ctx))
			done <- err
			return
		}
		done <- nil
	}()
	return done
}

// Wait blocks until every pending move confirmation has been handled.
func (a *Adapter) Wait() {
	a.inflight.Wait()
}

func (a *Adapter) CreateIssue(ctx context.Context, fields model.IssueFields) (*model.Issue, error) {
	issue, err := a.api.CreateIssue(ctx, fields)
	if err != nil {
		a.notify(fmt.Errorf("failed to create: %w", err))
		return nil, err
	}
	_ = a.Refresh(ctx)
	return issue, nil
}

func (a *Adapter) UpdateIssue(ctx context.Context, id string, patch model.IssuePatch) (*model.Issue, error) {
	issue, err := a.api.UpdateIssue(ctx, id, patch)
	if err != nil {
		a.notify(fmt.Errorf("failed to save: %w", err))
		return nil, err
	}
	_ = a.Refresh(ctx)
	return issue, nil
}

func (a *Adapter) DeleteIssue(ctx context.Context, id string) error {
	if err := a.api.DeleteIssue(ctx, id); err != nil {
		a.notify(fmt.Errorf("failed to delete: %w", err))
		return err
	}
	_ = a.Refresh(ctx)
	return nil
}

func (a *Adapter) replace(board *model.Board) {
	a.mu.Lock()
	a.board = board
	a.rev++
	rev := a.rev
	a.mu.Unlock()
	a.publish(board.Clone(), rev)
}

// publish hands board to onChange unless a newer state was already
// rendered, so the last render always matches the local board.
func (a *Adapter) publish(board *model.Board, rev uint64) {
	a.renderMu.Lock()
	defer a.renderMu.Unlock()
	if rev <= a.rendered {
		return
	}
	a.rendered = rev
	a.onChange(board)
}
