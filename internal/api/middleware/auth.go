package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/facgure/launchpad/internal/domain/session"
)

// sessionKey is the gin context key the guard stores the session under
const sessionKey = "launchpad.session"

// SessionCookie is the cookie the browser shell stores the token in.
// The Authorization header takes precedence when both are present.
const SessionCookie = "launchpad_session"

// Sessions is the verification surface the guard depends on
type Sessions interface {
	Verify(token string) (*session.Session, error)
}

// RequireSession guards a route group: requests without a live session
// are rejected with 401 before the handler runs. This is the API
// equivalent of the shell's redirect-to-login edge check.
func RequireSession(sessions Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "authentication required",
			})
			c.Abort()
			return
		}

		sess, err := sessions.Verify(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid or expired session",
			})
			c.Abort()
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequireAdmin guards admin-only routes. Must run after RequireSession.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := CurrentSession(c)
		if !ok || !sess.Permissions().CanDeleteApps {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "admin role required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentSession returns the session the guard attached to the request
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	val, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := val.(*session.Session)
	return sess, ok
}

// extractToken pulls the session token from the Authorization header or
// the session cookie
func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		if strings.HasPrefix(auth, "Bearer ") {
			return strings.TrimPrefix(auth, "Bearer ")
		}
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}
