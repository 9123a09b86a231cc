// internal/interfaces/http/handlers/session_cookie.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// sessionCookieName identifies the customer's session across requests
const sessionCookieName = "session_id"

// getOrCreateSessionID gets the session ID from the cookie or creates one
func getOrCreateSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(sessionCookieName)
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()

		// Set session cookie (24 hours)
		c.SetCookie(sessionCookieName, sessionID, 86400, "/", "", false, true)
	}

	return sessionID
}
