package model

import (
	"fmt"
	"strings"
)

type IssueType string

const (
	IssueTypeTask  IssueType = "task"
	IssueTypeStory IssueType = "story"
	IssueTypeBug   IssueType = "bug"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Defaults applied to fields left empty on create
const (
	DefaultTitle      = "Untitled"
	DefaultIssueType  = IssueTypeTask
	DefaultPriority   = PriorityMedium
	UnassignedDisplay = "Unassigned"
)

type Issue struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Assignee    string    `json:"assignee"`
	Type        IssueType `json:"type"`
	Priority    Priority  `json:"priority"`
	Description string    `json:"description"`
}

// IssueFields carries the user-supplied fields of a new issue.
type IssueFields struct {
	Title       string    `json:"title"`
	Assignee    string    `json:"assignee"`
	Type        IssueType `json:"type"`
	Priority    Priority  `json:"priority"`
	Description string    `json:"description"`
}

// IssuePatch is a partial update. Nil fields keep the current value.
type IssuePatch struct {
	Title       *string    `json:"title,omitempty"`
	Assignee    *string    `json:"assignee,omitempty"`
	Type        *IssueType `json:"type,omitempty"`
	Priority    *Priority  `json:"priority,omitempty"`
	Description *string    `json:"description,omitempty"`
}

func (t IssueType) Valid() bool {
	switch t {
	case IssueTypeTask, IssueTypeStory, IssueTypeBug:
		return true
	}
	return false
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// NewIssue builds an issue with id and fills empty fields with defaults.
func NewIssue(id string, f IssueFields) (*Issue, error) {
	issue := &Issue{
		ID:          id,
		Title:       f.Title,
		Assignee:    f.Assignee,
		Type:        f.Type,
		Priority:    f.Priority,
		Description: f.Description,
	}
	if issue.Title == "" {
		issue.Title = DefaultTitle
	}
	if issue.Type == "" {
		issue.Type = DefaultIssueType
	}
	if issue.Priority == "" {
		issue.Priority = DefaultPriority
	}
	if err := issue.validate(); err != nil {
		return nil, err
	}
	return issue, nil
}

// Apply merges the patch over a copy of the issue and returns it.
// Empty title or enum values fall back to the defaults, as on create.
func (i Issue) Apply(p IssuePatch) (*Issue, error) {
	out := i
	if p.Title != nil {
		out.Title = *p.Title
		if out.Title == "" {
			out.Title = DefaultTitle
		}
	}
	if p.Assignee != nil {
		out.Assignee = *p.Assignee
	}
	if p.Type != nil {
		out.Type = *p.Type
		if out.Type == "" {
			out.Type = DefaultIssueType
		}
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
		if out.Priority == "" {
			out.Priority = DefaultPriority
		}
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if err := out.validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

func (i *Issue) validate() error {
	if !i.Type.Valid() {
		return fmt.Errorf("%w: type %q", ErrInvalidField, i.Type)
	}
	if !i.Priority.Valid() {
		return fmt.Errorf("%w: priority %q", ErrInvalidField, i.Priority)
	}
	return nil
}

// AssigneeLabel returns the assignee or "Unassigned".
func (i *Issue) AssigneeLabel() string {
	if i.Assignee == "" {
		return UnassignedDisplay
	}
	return i.Assignee
}

// Matches reports whether the issue matches a free-text search query.
// The match is a case-insensitive substring test on title, assignee and description.
func (i *Issue) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(i.Title), q) ||
		strings.Contains(strings.ToLower(i.Assignee), q) ||
		strings.Contains(strings.ToLower(i.Description), q)
}
