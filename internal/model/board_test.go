package model_test

import (
	"errors"
	"testing"

	"nextin/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardWith(t *testing.T, placement map[string][]string) *model.Board {
	t.Helper()
	b := model.DefaultBoard()
	for colID, ids := range placement {
		for _, id := range ids {
			issue, err := model.NewIssue(id, model.IssueFields{Title: "Issue " + id})
			require.NoError(t, err)
			b.Issues[id] = issue
			b.Columns[colID].IssueIDs = append(b.Columns[colID].IssueIDs, id)
		}
	}
	return b
}

func TestDefaultBoard(t *testing.T) {
	b := model.DefaultBoard()

	assert.Equal(t, []string{"backlog", "todo", "inprogress", "review", "done"}, b.ColumnOrder)
	assert.Equal(t, "In Review", b.Columns["review"].Title)
	assert.Empty(t, b.Issues)
	for _, c := range b.Columns {
		assert.NotNil(t, c.IssueIDs)
		assert.Empty(t, c.IssueIDs)
	}
	assert.NoError(t, b.Validate())
}

func TestClone_IsDeep(t *testing.T) {
	b := boardWith(t, map[string][]string{"backlog": {"a", "b"}})
	cp := b.Clone()

	cp.Columns["backlog"].IssueIDs[0] = "z"
	cp.Issues["a"].Title = "changed"
	cp.ColumnOrder[0] = "other"

	assert.Equal(t, []string{"a", "b"}, b.Columns["backlog"].IssueIDs)
	assert.Equal(t, "Issue a", b.Issues["a"].Title)
	assert.Equal(t, "backlog", b.ColumnOrder[0])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *model.Board)
	}{
		{"dangling reference", func(b *model.Board) {
			b.Columns["todo"].IssueIDs = append(b.Columns["todo"].IssueIDs, "ghost")
		}},
		{"duplicate across columns", func(b *model.Board) {
			b.Columns["done"].IssueIDs = append(b.Columns["done"].IssueIDs, "a")
		}},
		{"duplicate in one column", func(b *model.Board) {
			b.Columns["backlog"].IssueIDs = append(b.Columns["backlog"].IssueIDs, "a")
		}},
		{"orphaned issue", func(b *model.Board) {
			b.Columns["backlog"].IssueIDs = []string{"b"}
		}},
		{"missing column", func(b *model.Board) {
			delete(b.Columns, "review")
		}},
		{"key mismatch", func(b *model.Board) {
			b.Issues["b"].ID = "c"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(t, map[string][]string{"backlog": {"a", "b"}})
			tt.mutate(b)
			err := b.Validate()
			assert.True(t, errors.Is(err, model.ErrInvalidBoard), "got %v", err)
		})
	}
}

func TestLocateAndRemoveRefs(t *testing.T) {
	b := boardWith(t, map[string][]string{"todo": {"a", "b"}, "done": {"c"}})

	col, idx, ok := b.Locate("b")
	assert.True(t, ok)
	assert.Equal(t, "todo", col)
	assert.Equal(t, 1, idx)

	_, _, ok = b.Locate("nope")
	assert.False(t, ok)

	// A corrupted board may hold the same id twice; every copy goes.
	b.Columns["review"].IssueIDs = []string{"c"}
	assert.Equal(t, 2, b.RemoveIssueRefs("c"))
	assert.Empty(t, b.Columns["done"].IssueIDs)
	assert.Empty(t, b.Columns["review"].IssueIDs)
}

func TestNewIssue_Defaults(t *testing.T) {
	issue, err := model.NewIssue("id-1", model.IssueFields{})
	require.NoError(t, err)

	assert.Equal(t, "Untitled", issue.Title)
	assert.Equal(t, model.IssueTypeTask, issue.Type)
	assert.Equal(t, model.PriorityMedium, issue.Priority)
	assert.Equal(t, "", issue.Assignee)
	assert.Equal(t, "Unassigned", issue.AssigneeLabel())

	_, err = model.NewIssue("id-2", model.IssueFields{Type: "epic"})
	assert.ErrorIs(t, err, model.ErrInvalidField)
}

func TestIssueApply(t *testing.T) {
	issue, err := model.NewIssue("id-1", model.IssueFields{Title: "Old", Assignee: "ann"})
	require.NoError(t, err)

	title := "New"
	prio := model.PriorityHigh
	updated, err := issue.Apply(model.IssuePatch{Title: &title, Priority: &prio})
	require.NoError(t, err)

	assert.Equal(t, "id-1", updated.ID)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "ann", updated.Assignee)
	assert.Equal(t, model.PriorityHigh, updated.Priority)
	assert.Equal(t, "Old", issue.Title)

	bad := model.Priority("urgent")
	_, err = issue.Apply(model.IssuePatch{Priority: &bad})
	assert.ErrorIs(t, err, model.ErrInvalidField)
}

func TestStats(t *testing.T) {
	b := boardWith(t, map[string][]string{"todo": {"a", "b"}, "done": {"c"}})
	b.Issues["a"].Assignee = "ann"
	b.Issues["c"].Assignee = "ann"

	s := b.Stats()
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Done)
	assert.Equal(t, map[string]int{"ann": 2, "Unassigned": 1}, s.ByAssignee)
}

func TestFilter(t *testing.T) {
	b := boardWith(t, map[string][]string{"todo": {"a", "b"}, "done": {"c"}})
	b.Issues["b"].Description = "Fix the LOGIN page"
	b.Issues["c"].Assignee = "Login Team"

	views := b.Filter("login")
	require.Len(t, views, 5)

	assert.Equal(t, "todo", views[1].ID)
	assert.Equal(t, 2, views[1].Total)
	require.Len(t, views[1].Issues, 1)
	assert.Equal(t, "b", views[1].Issues[0].ID)
	require.Len(t, views[4].Issues, 1)
	assert.Equal(t, "c", views[4].Issues[0].ID)

	all := b.Filter("")
	assert.Len(t, all[1].Issues, 2)
}
