package handlers

import (
	"net/http"

	"ferapp_backend/internal/domain"
	"ferapp_backend/internal/logger"
	"ferapp_backend/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthRequest struct {
	IDToken string `json:"id_token"`
}

// AuthGoogle exchanges a verified Google ID token for a session token,
// creating the owner record on first sign-in.
func (h *Handler) AuthGoogle(c *gin.Context) {
	var req AuthRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}
	if len(req.IDToken) > 4096 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id_token too long"})
		return
	}

	ctx := c.Request.Context()
	claims, err := service.VerifyGoogleIDToken(ctx, req.IDToken, h.GoogleClientID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid google token"})
		return
	}

	owner, err := h.Owners.GetByGoogleSub(ctx, claims.Sub)
	if err != nil {
		owner = &domain.Owner{
			GoogleSub: claims.Sub,
			Email:     claims.Email,
			Name:      claims.Name,
		}
		if err := h.Owners.Create(ctx, owner); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create owner"})
			return
		}
	} else if owner.Email != claims.Email || owner.Name != claims.Name {
		if err := h.Owners.UpdateProfile(ctx, owner.ID, claims.Email, claims.Name); err != nil {
			logger.Warn("owner profile refresh failed", "owner", owner.ID, "error", err)
		} else {
			owner.Email = claims.Email
			owner.Name = claims.Name
		}
	}

	token, err := service.GenerateJWT(owner.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"owner": gin.H{
			"id":    owner.ID,
			"email": owner.Email,
			"name":  owner.Name,
		},
	})
}

// SignOut releases every live subscription of the owner before the
// session ends, so no listener keeps mutating state afterwards.
func (h *Handler) SignOut(c *gin.Context) {
	ownerID, ok := getOwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "owner not found"})
		return
	}

	if h.Hub != nil {
		h.Hub.DropOwner(ownerID)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
