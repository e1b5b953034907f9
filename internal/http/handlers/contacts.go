package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"ferapp_backend/internal/domain"
	"ferapp_backend/internal/service"

	"github.com/gin-gonic/gin"
)

// Contact handlers cover the three reference books: providers, service
// providers and employees. Create and update share one upsert endpoint
// per book; a zero id means create.

func upperTrim(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func (h *Handler) ListProviders(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}
	items, err := h.Providers.List(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	if items == nil {
		items = []domain.Provider{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) PutProvider(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}
	var p domain.Provider
	if err := c.BindJSON(&p); err != nil || strings.TrimSpace(p.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}
	p.Name = upperTrim(p.Name)
	p.Address = upperTrim(p.Address)
	p.Observations = upperTrim(p.Observations)
	if p.ID == 0 {
		p.ID = service.NewDocID()
	}
	if err := h.Providers.Put(c.Request.Context(), ownerID, p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteProvider(c *gin.Context) {
	h.deleteByID(c, func(ctx *gin.Context, owner, id int64) error {
		return h.Providers.Delete(ctx.Request.Context(), owner, id)
	})
}

func (h *Handler) ListServices(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}
	items, err := h.Services.List(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	if items == nil {
		items = []domain.Service{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) PutService(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}
	var s domain.Service
	if err := c.BindJSON(&s); err != nil || strings.TrimSpace(s.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}
	s.Name = upperTrim(s.Name)
	s.Address = upperTrim(s.Address)
	s.Observations = upperTrim(s.Observations)
	if s.ID == 0 {
		s.ID = service.NewDocID()
	}
	if err := h.Services.Put(c.Request.Context(), ownerID, s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) DeleteService(c *gin.Context) {
	h.deleteByID(c, func(ctx *gin.Context, owner, id int64) error {
		return h.Services.Delete(ctx.Request.Context(), owner, id)
	})
}

func (h *Handler) ListEmployees(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}
	items, err := h.Employees.List(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	if items == nil {
		items = []domain.Employee{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) PutEmployee(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}
	var e domain.Employee
	if err := c.BindJSON(&e); err != nil || strings.TrimSpace(e.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}
	e.Name = upperTrim(e.Name)
	e.Role = upperTrim(e.Role)
	e.Observations = upperTrim(e.Observations)
	if e.ID == 0 {
		e.ID = service.NewDocID()
	}
	if err := h.Employees.Put(c.Request.Context(), ownerID, e); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	h.deleteByID(c, func(ctx *gin.Context, owner, id int64) error {
		return h.Employees.Delete(ctx.Request.Context(), owner, id)
	})
}

func (h *Handler) deleteByID(c *gin.Context, del func(*gin.Context, int64, int64) error) {
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
	if err := del(c, ownerID, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "store error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
