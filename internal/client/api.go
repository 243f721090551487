// Package client talks to the board API and keeps an optimistic local copy
// of the board in step with the server.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"nextin/internal/model"
	"nextin/internal/move"
)

// ErrNotFound is matched by API errors for unknown issue ids on update, delete and get.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Is maps server responses back onto the sentinels callers already know.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound && e.Message == "Not found"
	case move.ErrIssueNotFound:
		return e.StatusCode == http.StatusNotFound && e.Message == "Issue not found"
	case move.ErrInvalidColumn:
		return e.StatusCode == http.StatusBadRequest && e.Message == "Invalid columns"
	case move.ErrStaleIndex:
		return e.StatusCode == http.StatusConflict
	}
	return false
}

// BoardAPI is the remote surface the adapter depends on.
type BoardAPI interface {
	FetchBoard(ctx context.Context) (*model.Board, error)
	CreateIssue(ctx context.Context, fields model.IssueFields) (*model.Issue, error)
	UpdateIssue(ctx context.Context, id string, patch model.IssuePatch) (*model.Issue, error)
	DeleteIssue(ctx context.Context, id string) error
	MoveIssue(ctx context.Context, in move.Intent) error
}

// API is the HTTP implementation of BoardAPI.
type API struct {
	baseURL string
	http    *http.Client
	token   string
}

var _ BoardAPI = (*API)(nil)

type APIOption func(*API)

func WithHTTPClient(c *http.Client) APIOption {
	return func(a *API) { a.http = c }
}

// WithToken sends token as a bearer credential on every request.
func WithToken(token string) APIOption {
	return func(a *API) { a.token = token }
}

func NewAPI(baseURL string, opts ...APIOption) *API {
	a := &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *API) FetchBoard(ctx context.Context) (*model.Board, error) {
	var board model.Board
	if err := a.do(ctx, http.MethodGet, "/api/board", nil, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

func (a *API) Columns(ctx context.Context, query string) ([]model.ColumnView, error) {
	path := "/api/board/columns"
	if query != "" {
		path += "?q=" + url.QueryEscape(query)
	}
	var views []model.ColumnView
	if err := a.do(ctx, http.MethodGet, path, nil, &views); err != nil {
		return nil, err
	}
	return views, nil
}

func (a *API) Stats(ctx context.Context) (model.Stats, error) {
	var stats model.Stats
	err := a.do(ctx, http.MethodGet, "/api/stats", nil, &stats)
	return stats, err
}

func (a *API) GetIssue(ctx context.Context, id string) (*model.Issue, error) {
	var issue model.Issue
	if err := a.do(ctx, http.MethodGet, "/api/issues/"+url.PathEscape(id), nil, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

func (a *API) CreateIssue(ctx context.Context, fields model.IssueFields) (*model.Issue, error) {
	var issue model.Issue
	if err := a.do(ctx, http.MethodPost, "/api/issues", fields, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

func (a *API) UpdateIssue(ctx context.Context, id string, patch model.IssuePatch) (*model.Issue, error) {
	var issue model.Issue
	if err := a.do(ctx, http.MethodPut, "/api/issues/"+url.PathEscape(id), patch, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

func (a *API) DeleteIssue(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/api/issues/"+url.PathEscape(id), nil, nil)
}

func (a *API) MoveIssue(ctx context.Context, in move.Intent) error {
	return a.do(ctx, http.MethodPost, "/api/move", in, nil)
}

func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &payload) == nil {
			apiErr.Message = payload.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
