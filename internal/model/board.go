package model

import "fmt"

// Board is the aggregate root: column order, columns and the issue mapping.
type Board struct {
	ColumnOrder []string           `json:"columnOrder"`
	Columns     map[string]*Column `json:"columns"`
	Issues      map[string]*Issue  `json:"issues"`
}

var defaultColumns = []struct{ id, title string }{
	{ColumnBacklog, "Backlog"},
	{ColumnTodo, "To Do"},
	{ColumnInProgress, "In Progress"},
	{ColumnReview, "In Review"},
	{ColumnDone, "Done"},
}

// DefaultBoard returns the empty bootstrap board used when no valid snapshot exists.
func DefaultBoard() *Board {
	b := &Board{
		ColumnOrder: make([]string, 0, len(defaultColumns)),
		Columns:     make(map[string]*Column, len(defaultColumns)),
		Issues:      make(map[string]*Issue),
	}
	for _, c := range defaultColumns {
		b.ColumnOrder = append(b.ColumnOrder, c.id)
		b.Columns[c.id] = &Column{ID: c.id, Title: c.title, IssueIDs: []string{}}
	}
	return b
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := &Board{
		ColumnOrder: make([]string, len(b.ColumnOrder)),
		Columns:     make(map[string]*Column, len(b.Columns)),
		Issues:      make(map[string]*Issue, len(b.Issues)),
	}
	copy(out.ColumnOrder, b.ColumnOrder)
	for id, c := range b.Columns {
		out.Columns[id] = c.clone()
	}
	for id, issue := range b.Issues {
		cp := *issue
		out.Issues[id] = &cp
	}
	return out
}

// Locate scans every column for issueID and returns where it sits.
func (b *Board) Locate(issueID string) (columnID string, index int, ok bool) {
	for _, colID := range b.ColumnOrder {
		c, exists := b.Columns[colID]
		if !exists {
			continue
		}
		if i := c.IndexOf(issueID); i >= 0 {
			return colID, i, true
		}
	}
	return "", -1, false
}

// RemoveIssueRefs drops issueID from every column and reports how many
// references were removed.
func (b *Board) RemoveIssueRefs(issueID string) int {
	removed := 0
	for _, c := range b.Columns {
		kept := c.IssueIDs[:0]
		for _, id := range c.IssueIDs {
			if id == issueID {
				removed++
				continue
			}
			kept = append(kept, id)
		}
		c.IssueIDs = kept
	}
	return removed
}

// Validate checks the structural invariants of the board:
// column order and column map agree, every referenced issue exists,
// no issue is referenced twice and no issue is left without a column.
func (b *Board) Validate() error {
	if b == nil || b.Columns == nil || b.Issues == nil {
		return fmt.Errorf("%w: missing columns or issues", ErrInvalidBoard)
	}
	if len(b.ColumnOrder) != len(b.Columns) {
		return fmt.Errorf("%w: column order lists %d columns, board has %d",
			ErrInvalidBoard, len(b.ColumnOrder), len(b.Columns))
	}

	seenCols := make(map[string]bool, len(b.ColumnOrder))
	seenIssues := make(map[string]string, len(b.Issues))
	for _, colID := range b.ColumnOrder {
		if seenCols[colID] {
			return fmt.Errorf("%w: column %q listed twice", ErrInvalidBoard, colID)
		}
		seenCols[colID] = true

		c, ok := b.Columns[colID]
		if !ok || c == nil {
			return fmt.Errorf("%w: column %q missing", ErrInvalidBoard, colID)
		}
		if c.ID != colID {
			return fmt.Errorf("%w: column key %q holds column %q", ErrInvalidBoard, colID, c.ID)
		}
		for _, id := range c.IssueIDs {
			if _, ok := b.Issues[id]; !ok {
				return fmt.Errorf("%w: column %q references unknown issue %q", ErrInvalidBoard, colID, id)
			}
			if prev, dup := seenIssues[id]; dup {
				return fmt.Errorf("%w: issue %q in both %q and %q", ErrInvalidBoard, id, prev, colID)
			}
			seenIssues[id] = colID
		}
	}

	for id, issue := range b.Issues {
		if issue == nil || issue.ID != id {
			return fmt.Errorf("%w: issue key %q does not match record", ErrInvalidBoard, id)
		}
		if _, ok := seenIssues[id]; !ok {
			return fmt.Errorf("%w: issue %q is not in any column", ErrInvalidBoard, id)
		}
	}
	return nil
}
