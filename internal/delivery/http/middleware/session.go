package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookieName identifies the browser session owning a career form
	SessionCookieName = "career_session"
	// SessionIDKey is the gin context key holding the session id
	SessionIDKey = "SessionID"
)

// Session makes sure every request carries a session id cookie.
// Ids that are not uuids are replaced.
func Session(ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookieName)
		if _, parseErr := uuid.Parse(id); err != nil || parseErr != nil {
			id = uuid.NewString()
		}
		// Refreshed on every request: the cookie expires after ttl of inactivity
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, id, int(ttl.Seconds()), "/", "", secure, true)
		c.Set(SessionIDKey, id)
		c.Next()
	}
}
