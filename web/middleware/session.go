package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookieName = "sahayak_session"
const CookieMaxAge = 24 * 60 * 60 // 1 day; conversations are short-lived

// SessionMiddleware identifies the conversation via a cookie. A missing or
// unparsable cookie gets a fresh session ID; the registry creates the engine
// lazily on first use.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessionID uuid.UUID

		cookie, err := c.Cookie(SessionCookieName)
		if err == http.ErrNoCookie {
			sessionID = uuid.New()
			c.SetCookie(SessionCookieName, sessionID.String(), CookieMaxAge, "/", "", false, true)
		} else if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse session cookie"})
			return
		} else {
			sessionID, err = uuid.Parse(cookie)
			if err != nil {
				sessionID = uuid.New()
				c.SetCookie(SessionCookieName, sessionID.String(), CookieMaxAge, "/", "", false, true)
			}
		}

		c.Set("sessionID", sessionID)
		c.Next()
	}
}
