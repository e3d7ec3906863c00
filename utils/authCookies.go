package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie that carries the session token for browser
// clients.
const SessionCookieName = "clinicSession"

func SetSessionCookie(c *gin.Context, token string) {
	setCookie(c, SessionCookieName, token, SessionTokenExpiry)
}

func ClearSessionCookie(c *gin.Context) {
	setCookie(c, SessionCookieName, "", -time.Second)
}

// SessionCookie returns the session token from the cookie, or "".
func SessionCookie(c *gin.Context) string {
	token, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

func setCookie(c *gin.Context, name, value string, expiry time.Duration) {
	secure := gin.Mode() != gin.DebugMode
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, int(expiry.Seconds()), "/", "", secure, true)
}
