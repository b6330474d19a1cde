package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/lskolhar/complain-hub/internal/feed"
	"github.com/lskolhar/complain-hub/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Restrict in production!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeFeed handles GET /ws/admin: it upgrades the connection and attaches
// it to the complaint event feed. The caller must present a valid token.
func (h *Handler) ServeFeed(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return
	}

	id, err := h.Verifier.VerifyToken(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &feed.WebSocketClient{
		Hub:    h.Hub,
		UserID: id.UID,
		Conn:   conn,
		Send:   make(chan models.ComplaintEvent, 256),
	}

	// The hub starts the client's pumps once it is registered.
	h.Hub.RegisterCh <- client
}
