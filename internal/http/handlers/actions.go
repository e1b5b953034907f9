package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"ferapp_backend/internal/domain"
	"ferapp_backend/internal/reconcile"

	"github.com/gin-gonic/gin"
)

const maxActionBody = 16 << 10

// ListActions returns all three action collections in one payload so
// the calendar view can be built with a single request.
func (h *Handler) ListActions(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}

	ctx := c.Request.Context()
	orders, err := h.Actions.Orders(ctx, ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	requests, err := h.Actions.ServiceRequests(ctx, ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	calls, err := h.Actions.Calls(ctx, ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	if requests == nil {
		requests = []domain.ServiceRequest{}
	}
	if calls == nil {
		calls = []domain.Call{}
	}
	c.JSON(http.StatusOK, gin.H{
		"orders":          orders,
		"serviceRequests": requests,
		"calls":           calls,
	})
}

// SaveAction creates or edits a linked action. The body carries a
// "type" discriminator that routes decoding to the right variant, and
// an optional taskId that marks a pending task done on save.
func (h *Handler) SaveAction(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxActionBody))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	action, err := decodeAction(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.ActionService.CreateLinkedAction(c.Request.Context(), ownerID, action)
	if err != nil {
		if errors.Is(err, reconcile.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "type": action.Type})
}

// DeleteAction removes an action; the path carries the discriminator
// because the three kinds live in separate collections.
func (h *Handler) DeleteAction(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}

	typ := domain.ActionType(c.Param("type"))
	switch typ {
	case domain.ActionOrder, domain.ActionService, domain.ActionCall:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action type"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.Actions.Delete(c.Request.Context(), ownerID, typ, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func decodeAction(body []byte) (domain.Action, error) {
	var probe struct {
		Type domain.ActionType `json:"type"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return domain.Action{}, errors.New("invalid json")
	}

	switch probe.Type {
	case domain.ActionOrder:
		var o domain.Order
		if err := json.Unmarshal(body, &o); err != nil {
			return domain.Action{}, errors.New("invalid order body")
		}
		o.Type = domain.ActionOrder
		o.OrderDetails = upperTrim(o.OrderDetails)
		o.Observations = upperTrim(o.Observations)
		if err := checkDates(o.OrderDate, o.DeliveryDate); err != nil {
			return domain.Action{}, err
		}
		return domain.Action{Type: domain.ActionOrder, Order: &o}, nil
	case domain.ActionService:
		var sr domain.ServiceRequest
		if err := json.Unmarshal(body, &sr); err != nil {
			return domain.Action{}, errors.New("invalid service request body")
		}
		sr.Type = domain.ActionService
		sr.Details = upperTrim(sr.Details)
		sr.Observations = upperTrim(sr.Observations)
		if err := checkDates(sr.RequestDate, sr.ExecutionDate); err != nil {
			return domain.Action{}, err
		}
		return domain.Action{Type: domain.ActionService, ServiceRequest: &sr}, nil
	case domain.ActionCall:
		var call domain.Call
		if err := json.Unmarshal(body, &call); err != nil {
			return domain.Action{}, errors.New("invalid call body")
		}
		call.Type = domain.ActionCall
		call.Reason = upperTrim(call.Reason)
		call.Observations = upperTrim(call.Observations)
		if err := checkDates(call.CallDate, ""); err != nil {
			return domain.Action{}, err
		}
		return domain.Action{Type: domain.ActionCall, Call: &call}, nil
	}
	return domain.Action{}, errors.New("unknown action type")
}

// checkDates requires the primary date and validates the secondary one
// only when set.
func checkDates(primary, secondary string) error {
	if _, err := time.Parse(reconcile.DateLayout, primary); err != nil {
		return errors.New("date must be YYYY-MM-DD")
	}
	if secondary != "" {
		if _, err := time.Parse(reconcile.DateLayout, secondary); err != nil {
			return errors.New("date must be YYYY-MM-DD")
		}
	}
	return nil
}
