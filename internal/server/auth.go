package server

import (
	"errors"
	"net/http"

	"gig-marketplace/services/marketplace/handler"
	"gig-marketplace/utils"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the acting user's identity. Authentication itself
// happens upstream (gateway/session layer); by the time a request reaches
// this service the header value is trusted.
const UserIDHeader = "X-User-ID"

var errMissingUser = errors.New("missing user identity")

// AuthRequiredMiddleware rejects requests without an acting user identity and
// stores the identity for the handlers
func AuthRequiredMiddleware(c *gin.Context) {
	userID := c.GetHeader(UserIDHeader)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, errMissingUser, "authentication required")
		utils.Warn("auth: request without user identity", map[string]any{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		})
		c.Abort()
		return
	}

	c.Set(handler.ActingUserKey, userID)
	c.Next()
}
