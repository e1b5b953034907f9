package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Me(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}

	owner, err := h.Owners.GetByID(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "owner not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         owner.ID,
		"email":      owner.Email,
		"name":       owner.Name,
		"created_at": owner.CreatedAt,
	})
}
