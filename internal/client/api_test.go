package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"nextin/internal/client"
	"nextin/internal/move"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    *client.APIError
		target error
		want   bool
	}{
		{"unknown id", &client.APIError{StatusCode: 404, Message: "Not found"}, client.ErrNotFound, true},
		{"unknown issue on move", &client.APIError{StatusCode: 404, Message: "Issue not found"}, move.ErrIssueNotFound, true},
		{"move 404 is not plain not found", &client.APIError{StatusCode: 404, Message: "Issue not found"}, client.ErrNotFound, false},
		{"bad columns", &client.APIError{StatusCode: 400, Message: "Invalid columns"}, move.ErrInvalidColumn, true},
		{"stale", &client.APIError{StatusCode: 409, Message: "Stale source index"}, move.ErrStaleIndex, true},
		{"server failure", &client.APIError{StatusCode: 500, Message: "Failed to persist board"}, client.ErrNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Is(tt.target))
		})
	}
}

func TestAPI_SendsTokenAndDecodesErrors(t *testing.T) {
	// Arrange
	var gotAuth, gotType string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Invalid or expired token"}`))
	}))
	defer ts.Close()
	api := client.NewAPI(ts.URL+"/", client.WithToken("abc"), client.WithHTTPClient(ts.Client()))

	// Act
	err := api.MoveIssue(context.Background(), move.Intent{IssueID: "a", SourceCol: "todo", DestCol: "done"})

	// Assert
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid or expired token", apiErr.Message)
	assert.Equal(t, "Bearer abc", gotAuth)
	assert.Equal(t, "application/json", gotType)
}

func TestAPI_NonJSONErrorBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := client.NewAPI(ts.URL).FetchBoard(context.Background())

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "server returned 502", apiErr.Error())
}
