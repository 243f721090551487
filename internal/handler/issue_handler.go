package handler

import (
	"errors"
	"io"
	"net/http"

	"nextin/internal/model"

	"github.com/gin-gonic/gin"
)

type IssueHandler struct {
	svc BoardService
}

func NewIssueHandler(svc BoardService) *IssueHandler {
	return &IssueHandler{svc: svc}
}

// CreateIssueRequest представляет запрос на создание задачи; пустые поля получают значения по умолчанию
type CreateIssueRequest struct {
	Title       string `json:"title"`
	Assignee    string `json:"assignee"`
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Description string `json:"description"`
}

// UpdateIssueRequest представляет частичное обновление задачи. Ключ "id" в теле игнорируется
type UpdateIssueRequest struct {
	Title       *string `json:"title"`
	Assignee    *string `json:"assignee"`
	Type        *string `json:"type"`
	Priority    *string `json:"priority"`
	Description *string `json:"description"`
}

func (r UpdateIssueRequest) patch() model.IssuePatch {
	p := model.IssuePatch{
		Title:       r.Title,
		Assignee:    r.Assignee,
		Description: r.Description,
	}
	if r.Type != nil {
		t := model.IssueType(*r.Type)
		p.Type = &t
	}
	if r.Priority != nil {
		pr := model.Priority(*r.Priority)
		p.Priority = &pr
	}
	return p
}

// Get получает задачу по ID
func (h *IssueHandler) Get(c *gin.Context) {
	issue, err := h.svc.GetIssue(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

// Create создает задачу в начале бэклога. Пустое тело равносильно {}
func (h *IssueHandler) Create(c *gin.Context) {
	var req CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	issue, version, err := h.svc.CreateIssue(c.Request.Context(), model.IssueFields{
		Title:       req.Title,
		Assignee:    req.Assignee,
		Type:        model.IssueType(req.Type),
		Priority:    model.Priority(req.Priority),
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	setVersion(c, version)
	c.JSON(http.StatusCreated, issue)
}

// Update обновляет задачу, накладывая переданные поля на сохраненные
func (h *IssueHandler) Update(c *gin.Context) {
	var req UpdateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	issue, version, err := h.svc.UpdateIssue(c.Request.Context(), c.Param("id"), req.patch())
	if err != nil {
		respondError(c, err)
		return
	}

	setVersion(c, version)
	c.JSON(http.StatusOK, issue)
}

// Delete удаляет задачу и все ссылки на нее из колонок
func (h *IssueHandler) Delete(c *gin.Context) {
	version, err := h.svc.DeleteIssue(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	setVersion(c, version)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
