package model

// Stats summarises the board for the overview sidebar.
type Stats struct {
	Total      int            `json:"total"`
	Done       int            `json:"done"`
	ByAssignee map[string]int `json:"byAssignee"`
}

func (b *Board) Stats() Stats {
	s := Stats{
		Total:      len(b.Issues),
		ByAssignee: make(map[string]int),
	}
	if done, ok := b.Columns[DoneColumnID]; ok {
		s.Done = len(done.IssueIDs)
	}
	for _, issue := range b.Issues {
		s.ByAssignee[issue.AssigneeLabel()]++
	}
	return s
}

// ColumnView is a column with its issues resolved, in rank order.
type ColumnView struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Total  int      `json:"total"`
	Issues []*Issue `json:"issues"`
}

// Filter resolves every column in display order and keeps only the issues
// matching query. Total is the unfiltered column size.
func (b *Board) Filter(query string) []ColumnView {
	views := make([]ColumnView, 0, len(b.ColumnOrder))
	for _, colID := range b.ColumnOrder {
		c, ok := b.Columns[colID]
		if !ok {
			continue
		}
		v := ColumnView{ID: c.ID, Title: c.Title, Total: len(c.IssueIDs), Issues: []*Issue{}}
		for _, id := range c.IssueIDs {
			issue, ok := b.Issues[id]
			if !ok {
				continue
			}
			if issue.Matches(query) {
				v.Issues = append(v.Issues, issue)
			}
		}
		views = append(views, v)
	}
	return views
}
