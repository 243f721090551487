// Package move relocates a single issue between or within board columns.
package move

import (
	"errors"
	"fmt"

	"nextin/internal/model"
)

var (
	ErrIssueNotFound = errors.New("issue not found")
	ErrInvalidColumn = errors.New("invalid column")
	// ErrStaleIndex is returned by PolicyStrict when the source index no
	// longer points at the issue.
	ErrStaleIndex = errors.New("stale source index")
)

// Intent is one drag-release: take IssueID from SourceCol at SourceIndex
// and put it into DestCol at DestIndex.
type Intent struct {
	IssueID     string `json:"issueId"`
	SourceCol   string `json:"sourceCol"`
	DestCol     string `json:"destCol"`
	SourceIndex int    `json:"sourceIndex"`
	DestIndex   int    `json:"destIndex"`
}

// Policy decides how a source index that does not point at the issue is handled.
type Policy int

const (
	// PolicyResolve locates the issue by id and treats DestIndex as a clamped insertion point.
	PolicyResolve Policy = iota
	// PolicyStrict rejects the move with ErrStaleIndex.
	PolicyStrict
)

func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "resolve":
		return PolicyResolve, nil
	case "strict":
		return PolicyStrict, nil
	}
	return PolicyResolve, fmt.Errorf("unknown move policy %q", s)
}

func (p Policy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "resolve"
}

// IsNoop reports whether the intent drops the issue back where it was picked up.
func IsNoop(in Intent) bool {
	return in.SourceCol == in.DestCol && in.SourceIndex == in.DestIndex
}

// Apply validates the intent against b and performs the splice in place.
// changed is false when the board was left untouched.
func Apply(b *model.Board, in Intent, policy Policy) (changed bool, err error) {
	if _, ok := b.Issues[in.IssueID]; !ok {
		return false, fmt.Errorf("%w: %s", ErrIssueNotFound, in.IssueID)
	}
	src, ok := b.Columns[in.SourceCol]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrInvalidColumn, in.SourceCol)
	}
	dst, ok := b.Columns[in.DestCol]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrInvalidColumn, in.DestCol)
	}
	if IsNoop(in) {
		return false, nil
	}

	from, fromIdx, err := resolveSource(b, src, in, policy)
	if err != nil {
		return false, err
	}

	if from != nil {
		from.IssueIDs = removeAt(from.IssueIDs, fromIdx)
	}
	at := clamp(in.DestIndex, 0, len(dst.IssueIDs))
	dst.IssueIDs = insertAt(dst.IssueIDs, at, in.IssueID)

	if from == dst && fromIdx == at {
		return false, nil
	}
	return true, nil
}

// resolveSource returns the column currently holding the issue and its
// index there. A nil column means the issue is on no column at all.
func resolveSource(b *model.Board, src *model.Column, in Intent, policy Policy) (*model.Column, int, error) {
	if in.SourceIndex >= 0 && in.SourceIndex < len(src.IssueIDs) && src.IssueIDs[in.SourceIndex] == in.IssueID {
		return src, in.SourceIndex, nil
	}
	if policy == PolicyStrict {
		return nil, -1, fmt.Errorf("%w: %s is not at %s[%d]", ErrStaleIndex, in.IssueID, in.SourceCol, in.SourceIndex)
	}
	if i := src.IndexOf(in.IssueID); i >= 0 {
		return src, i, nil
	}
	if colID, i, ok := b.Locate(in.IssueID); ok {
		return b.Columns[colID], i, nil
	}
	return nil, -1, nil
}

func removeAt(ids []string, i int) []string {
	return append(ids[:i], ids[i+1:]...)
}

func insertAt(ids []string, i int, id string) []string {
	ids = append(ids, "")
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
