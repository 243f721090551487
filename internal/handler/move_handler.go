package handler

import (
	"net/http"

	"nextin/internal/move"

	"github.com/gin-gonic/gin"
)

type MoveHandler struct {
	svc BoardService
}

func NewMoveHandler(svc BoardService) *MoveHandler {
	return &MoveHandler{svc: svc}
}

// MoveRequest представляет запрос на перемещение задачи. Индексы указатели, чтобы 0 проходил "required";
// идентификаторы задачи и колонок проверяет сам движок перемещения
type MoveRequest struct {
	IssueID     string `json:"issueId"`
	SourceCol   string `json:"sourceCol"`
	DestCol     string `json:"destCol"`
	SourceIndex *int   `json:"sourceIndex" binding:"required"`
	DestIndex   *int   `json:"destIndex" binding:"required"`
}

// Move перемещает задачу между колонками или изменяет её позицию
func (h *MoveHandler) Move(c *gin.Context) {
	var req MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	version, err := h.svc.MoveIssue(c.Request.Context(), move.Intent{
		IssueID:     req.IssueID,
		SourceCol:   req.SourceCol,
		DestCol:     req.DestCol,
		SourceIndex: *req.SourceIndex,
		DestIndex:   *req.DestIndex,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	setVersion(c, version)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
