package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ferapp_backend/internal/domain"
	"ferapp_backend/internal/reconcile"
	"ferapp_backend/internal/service"
	"ferapp_backend/internal/store"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListReminders(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}

	reminders, err := h.Reminders.List(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	if reminders == nil {
		reminders = []domain.Reminder{}
	}
	c.JSON(http.StatusOK, reminders)
}

// CreateReminder schedules a note for a future (or present) date.
// Reminders due today are promoted to tasks by the sync service.
func (h *Handler) CreateReminder(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}

	var req struct {
		Date string `json:"date"`
		Text string `json:"text"`
	}
	if err := c.BindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date and text required"})
		return
	}
	if _, err := time.Parse(reconcile.DateLayout, req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	rem := domain.Reminder{
		ID:   service.NewDocID(),
		Date: req.Date,
		Text: strings.ToUpper(strings.TrimSpace(req.Text)),
	}
	if err := h.Reminders.Put(c.Request.Context(), ownerID, rem); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}

	c.JSON(http.StatusOK, rem)
}

func (h *Handler) UpdateReminderText(c *gin.Context) {
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

	err = h.Reminders.UpdateText(c.Request.Context(), ownerID, id, strings.ToUpper(strings.TrimSpace(req.Text)))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) DeleteReminder(c *gin.Context) {
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

	if err := h.Reminders.Delete(c.Request.Context(), ownerID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// PromoteReminders runs due-reminder promotion on demand. The same
// routine runs automatically whenever the reminders collection changes,
// so this mainly serves clients that just came online.
func (h *Handler) PromoteReminders(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}

	promoted, err := h.SyncService.PromoteDue(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "promotion failed", "promoted": promoted})
		return
	}
	c.JSON(http.StatusOK, gin.H{"promoted": promoted})
}
