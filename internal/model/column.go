package model

// Fixed column set. New issues land in DefaultColumnID.
const (
	ColumnBacklog    = "backlog"
	ColumnTodo       = "todo"
	ColumnInProgress = "inprogress"
	ColumnReview     = "review"
	ColumnDone       = "done"

	DefaultColumnID = ColumnBacklog
	DoneColumnID    = ColumnDone
)

type Column struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	IssueIDs []string `json:"issueIds"`
}

// IndexOf returns the position of issueID in the column, or -1.
func (c *Column) IndexOf(issueID string) int {
	for i, id := range c.IssueIDs {
		if id == issueID {
			return i
		}
	}
	return -1
}

func (c *Column) clone() *Column {
	ids := make([]string, len(c.IssueIDs))
	copy(ids, c.IssueIDs)
	return &Column{ID: c.ID, Title: c.Title, IssueIDs: ids}
}
