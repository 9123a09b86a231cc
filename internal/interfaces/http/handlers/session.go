// internal/interfaces/http/handlers/session.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/snackshop-backend/internal/domain/session"
)

// SessionHandler handles navigation state endpoints
type SessionHandler struct {
	sessionService *session.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *session.Service) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// GetSession handles GET /session
func (h *SessionHandler) GetSession(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	sess, err := h.sessionService.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Session retrieved successfully",
		"data":    sess,
	})
}

// Navigate handles POST /session/navigate
func (h *SessionHandler) Navigate(c *gin.Context) {
	sessionID := getOrCreateSessionID(c)

	var req session.NavigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	sess, err := h.sessionService.Navigate(c.Request.Context(), sessionID, session.Event(req.Event))
	if err != nil {
		if errors.Is(err, session.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Session updated successfully",
		"data":    sess,
	})
}
