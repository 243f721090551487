package server_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"nextin/internal/auth"
	"nextin/internal/config"
	"nextin/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		StoreDriver: config.StoreFile,
		DataFile:    filepath.Join(t.TempDir(), "data.json"),
		MovePolicy:  "resolve",
		LogLevel:    "error",
		CORSOrigin:  "*",
	}
}

func request(s *server.Server, method, path, body, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	s.Engine.ServeHTTP(resp, req)
	return resp
}

func TestInit_FileStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s, err := server.Init(testConfig(t))
	require.NoError(t, err)
	s.Logger.SetOutput(io.Discard)

	resp := request(s, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = request(s, http.MethodPost, "/api/issues", `{"title":"T1"}`, "")
	assert.Equal(t, http.StatusCreated, resp.Code)

	resp = request(s, http.MethodGet, "/api/board", "", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"T1"`)
}

func TestInit_Errors(t *testing.T) {
	cfg := testConfig(t)
	cfg.MovePolicy = "literal"
	_, err := server.Init(cfg)
	assert.Error(t, err)

	cfg = testConfig(t)
	cfg.StoreDriver = "mongo"
	_, err = server.Init(cfg)
	assert.Error(t, err)
}

func TestRouter_AuthGuardsMutations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	cfg.JWTSecret = "s3cret"
	s, err := server.Init(cfg)
	require.NoError(t, err)
	s.Logger.SetOutput(io.Discard)

	// Reads stay public
	resp := request(s, http.MethodGet, "/api/board", "", "")
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = request(s, http.MethodPost, "/api/issues", `{"title":"T1"}`, "")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	token, err := auth.GenerateToken(cfg.JWTSecret, "test", time.Hour)
	require.NoError(t, err)
	resp = request(s, http.MethodPost, "/api/issues", `{"title":"T1"}`, token)
	assert.Equal(t, http.StatusCreated, resp.Code)
}
