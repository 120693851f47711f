package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_console/internal/session"
)

// SessionCookie names the cookie carrying the session id.
const SessionCookie = "fleet_session"

const sessionKey = "session"

// RequireRole gates a route group on an authenticated session with the given
// role. Missing, expired, or wrong-role sessions are sent back to the login
// page; expired backend tokens also clear the stored session.
func RequireRole(store session.Store, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			redirectToLogin(c)
			return
		}

		sess, ok := store.Get(id)
		if !ok {
			redirectToLogin(c)
			return
		}
		if session.TokenExpired(sess.Token) {
			store.Logout(id)
			redirectToLogin(c)
			return
		}
		if sess.User.Role != role {
			redirectToLogin(c)
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session placed on the context by RequireRole.
func CurrentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
	c.Abort()
}
