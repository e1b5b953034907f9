package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"ferapp_backend/internal/domain"
	"ferapp_backend/internal/reconcile"
	"ferapp_backend/internal/service"
	"ferapp_backend/internal/store"

	"github.com/gin-gonic/gin"
)

// ListTasks returns the owner's tasks split into pending and completed,
// the two views the dashboard renders.
func (h *Handler) ListTasks(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}

	tasks, err := h.Tasks.List(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}

	pending := []domain.Task{}
	completed := []domain.Task{}
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}

	c.JSON(http.StatusOK, gin.H{"pending": pending, "completed": completed})
}

// CreateTask adds a pending task dated today. Text is upper-cased the
// way every free-text field in the dashboard is.
func (h *Handler) CreateTask(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text required"})
		return
	}

	task := domain.Task{
		ID:        service.NewDocID(),
		Text:      strings.ToUpper(strings.TrimSpace(req.Text)),
		Completed: false,
		Date:      reconcile.Today(h.Loc),
	}
	if err := h.Tasks.Put(c.Request.Context(), ownerID, task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTaskText edits the text in place; the task's date never changes.
func (h *Handler) UpdateTaskText(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text required"})
		return
	}

	err = h.Tasks.UpdateText(c.Request.Context(), ownerID, id, strings.ToUpper(strings.TrimSpace(req.Text)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// SetTaskCompleted toggles a task between the pending and completed
// partitions.
func (h *Handler) SetTaskCompleted(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		Completed bool `json:"completed"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	if err := h.Tasks.SetCompleted(c.Request.Context(), ownerID, id, req.Completed); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) DeleteTask(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Tasks.Delete(c.Request.Context(), ownerID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
