package move_test

import (
	"fmt"
	"testing"

	"nextin/internal/model"
	"nextin/internal/move"

	"pgregory.net/rapid"
)

// genBoard spreads n issues over the default columns at random.
func genBoard(t *rapid.T) *model.Board {
	b := model.DefaultBoard()
	n := rapid.IntRange(1, 12).Draw(t, "issues")
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("i%d", i)
		col := rapid.SampledFrom(b.ColumnOrder).Draw(t, "col")
		b.Issues[id] = &model.Issue{ID: id, Title: id, Type: model.IssueTypeTask, Priority: model.PriorityMedium}
		b.Columns[col].IssueIDs = append(b.Columns[col].IssueIDs, id)
	}
	return b
}

func genIntent(t *rapid.T, b *model.Board) move.Intent {
	ids := make([]string, 0, len(b.Issues))
	for _, col := range b.ColumnOrder {
		ids = append(ids, b.Columns[col].IssueIDs...)
	}
	id := rapid.SampledFrom(ids).Draw(t, "issue")
	src, srcIdx, _ := b.Locate(id)
	if rapid.Bool().Draw(t, "stale") {
		src = rapid.SampledFrom(b.ColumnOrder).Draw(t, "staleCol")
		srcIdx = rapid.IntRange(-1, 12).Draw(t, "staleIdx")
	}
	return move.Intent{
		IssueID:     id,
		SourceCol:   src,
		SourceIndex: srcIdx,
		DestCol:     rapid.SampledFrom(b.ColumnOrder).Draw(t, "dest"),
		DestIndex:   rapid.IntRange(-2, 14).Draw(t, "destIdx"),
	}
}

func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}

func TestApply_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := genBoard(t)
		in := genIntent(t, b)
		before := b.Clone()

		changed, err := move.Apply(b, in, move.PolicyResolve)
		if err != nil {
			t.Fatalf("apply %+v: %v", in, err)
		}

		// Every issue still referenced exactly once, nothing dangling.
		if err := b.Validate(); err != nil {
			t.Fatalf("invariant broken after %+v: %v", in, err)
		}

		// Relative order of every other issue is preserved in every column.
		for _, col := range b.ColumnOrder {
			got := without(b.Columns[col].IssueIDs, in.IssueID)
			want := without(before.Columns[col].IssueIDs, in.IssueID)
			if fmt.Sprint(got) != fmt.Sprint(want) {
				t.Fatalf("column %s reordered: before %v after %v", col, want, got)
			}
		}

		if move.IsNoop(in) && changed {
			t.Fatalf("noop intent %+v reported a change", in)
		}
		if !changed {
			for _, col := range b.ColumnOrder {
				if fmt.Sprint(b.Columns[col].IssueIDs) != fmt.Sprint(before.Columns[col].IssueIDs) {
					t.Fatalf("unchanged move altered column %s", col)
				}
			}
		}

		if !move.IsNoop(in) {
			col, _, ok := b.Locate(in.IssueID)
			if !ok || col != in.DestCol {
				t.Fatalf("issue %s ended in %q, want %q", in.IssueID, col, in.DestCol)
			}
		}
	})
}
