package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"nextin/internal/model"
	"nextin/internal/move"
	"nextin/internal/repository"

	"github.com/gin-gonic/gin"
)

// VersionHeader содержит версию доски после каждого чтения или изменения
const VersionHeader = "X-Board-Version"

// BoardService описывает хранилище доски, которым пользуется HTTP-слой.
// Изменяющие методы возвращают версию, под которой изменение зафиксировано.
type BoardService interface {
	Snapshot(ctx context.Context) (*model.Board, int64)
	GetIssue(ctx context.Context, id string) (*model.Issue, error)
	Stats(ctx context.Context) (model.Stats, error)
	CreateIssue(ctx context.Context, fields model.IssueFields) (*model.Issue, int64, error)
	UpdateIssue(ctx context.Context, id string, patch model.IssuePatch) (*model.Issue, int64, error)
	DeleteIssue(ctx context.Context, id string) (int64, error)
	MoveIssue(ctx context.Context, in move.Intent) (int64, error)
}

var _ BoardService = (*repository.BoardRepository)(nil)

func setVersion(c *gin.Context, version int64) {
	c.Header(VersionHeader, strconv.FormatInt(version, 10))
}

// respondError переводит ошибки хранилища и перемещения в HTTP-ответы
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrIssueNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, move.ErrIssueNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
	case errors.Is(err, move.ErrInvalidColumn):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid columns"})
	case errors.Is(err, move.ErrStaleIndex):
		c.JSON(http.StatusConflict, gin.H{"error": "Stale source index"})
	case errors.Is(err, model.ErrInvalidField):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrPersistence):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to persist board"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
	_ = c.Error(err)
}
