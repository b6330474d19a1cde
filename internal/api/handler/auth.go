package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// VerifyToken handles POST /api/auth/verifyToken. On success it backfills
// the user profile if missing; that backfill is best-effort and a failure
// only gets logged — the verified identity is still returned.
func (h *Handler) VerifyToken(c *gin.Context) {
	var req struct {
		IDToken string `json:"idToken"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IDToken == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "idToken is required"})
		return
	}

	id, err := h.Verifier.VerifyToken(req.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	if err := h.Users.EnsureProfile(c.Request.Context(), id); err != nil {
		log.Printf("Profile backfill for %s failed: %v", id.UID, err)
	}

	c.JSON(http.StatusOK, id)
}

// bearerToken extracts the token from an Authorization header, falling
// back to the token query parameter for WebSocket clients.
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[len("Bearer "):]
	}
	return c.Query("token")
}
