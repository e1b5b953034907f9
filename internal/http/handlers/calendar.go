package handlers

import (
	"fmt"
	"net/http"
	"time"

	"ferapp_backend/internal/domain"
	"ferapp_backend/internal/reconcile"

	"github.com/gin-gonic/gin"
)

// CalendarMarkers computes the per-day activity flags for one month.
// Only days with at least one flag set appear in the response; the
// client treats missing days as blank.
func (h *Handler) CalendarMarkers(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}

	month := c.Query("month")
	first, err := time.ParseInLocation("2006-01", month, h.Loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
		return
	}

	ctx := c.Request.Context()
	orders, requests, calls, err := h.loadActions(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	reminders, err := h.Reminders.List(ctx, ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}

	markers := map[string]reconcile.DayMarkers{}
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		day := d.Format(reconcile.DateLayout)
		m := reconcile.MarkersFor(day, orders, requests, calls, reminders)
		if m.HasOrderActivity || m.HasServiceActivity || m.HasCallActivity || m.HasReminder {
			markers[day] = m
		}
	}
	c.JSON(http.StatusOK, gin.H{"month": month, "markers": markers})
}

// CalendarDay resolves everything happening on one date: each action
// once per date role it matches, with the referenced person's name, plus
// any reminders scheduled for that day.
func (h *Handler) CalendarDay(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}

	day := c.Param("date")
	if _, err := time.Parse(reconcile.DateLayout, day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	ctx := c.Request.Context()
	orders, requests, calls, err := h.loadActions(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	providers, err := h.Providers.List(ctx, ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	services, err := h.Services.List(ctx, ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	employees, err := h.Employees.List(ctx, ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	allReminders, err := h.Reminders.List(ctx, ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}

	resolved := reconcile.ResolveDay(day, orders, requests, calls, providers, services, employees)
	entries := make([]gin.H, 0, len(resolved))
	for _, ra := range resolved {
		entries = append(entries, gin.H{
			"category":   ra.Category,
			"personName": ra.PersonName,
			"action":     actionBody(ra.Action),
		})
	}

	dayReminders := []domain.Reminder{}
	for _, r := range allReminders {
		if r.Date == day {
			dayReminders = append(dayReminders, r)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      day,
		"actions":   entries,
		"reminders": dayReminders,
	})
}

func (h *Handler) loadActions(c *gin.Context) ([]domain.Order, []domain.ServiceRequest, []domain.Call, error) {
	ownerID, _ := getOwnerID(c)
	ctx := c.Request.Context()

	orders, err := h.Actions.Orders(ctx, ownerID)
	if err != nil {
		return nil, nil, nil, err
	}
	requests, err := h.Actions.ServiceRequests(ctx, ownerID)
	if err != nil {
		return nil, nil, nil, err
	}
	calls, err := h.Actions.Calls(ctx, ownerID)
	if err != nil {
		return nil, nil, nil, err
	}
	return orders, requests, calls, nil
}

// actionBody flattens the tagged union to its active variant for the
// response payload.
func actionBody(a domain.Action) any {
	switch a.Type {
	case domain.ActionOrder:
		return a.Order
	case domain.ActionService:
		return a.ServiceRequest
	case domain.ActionCall:
		return a.Call
	}
	return fmt.Sprintf("unknown action type %q", a.Type)
}
