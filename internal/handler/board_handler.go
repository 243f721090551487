package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	svc BoardService
}

func NewBoardHandler(svc BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// Get возвращает доску целиком
func (h *BoardHandler) Get(c *gin.Context) {
	board, version := h.svc.Snapshot(c.Request.Context())
	setVersion(c, version)
	c.JSON(http.StatusOK, board)
}

// Columns возвращает колонки в порядке отображения вместе с задачами,
// отфильтрованными по необязательному параметру q
func (h *BoardHandler) Columns(c *gin.Context) {
	board, version := h.svc.Snapshot(c.Request.Context())
	setVersion(c, version)
	c.JSON(http.StatusOK, board.Filter(c.Query("q")))
}

// Stats возвращает счетчики задач
func (h *BoardHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
