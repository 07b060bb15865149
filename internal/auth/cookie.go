package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CookieName is the session cookie the browser clients rely on.
const CookieName = "auth-token"

// SetSessionCookie attaches the session token as an HTTP-only, SameSite=Lax
// cookie scoped to the whole site. Secure is only set in production so local
// development over plain HTTP keeps working.
func SetSessionCookie(c *gin.Context, token string, maxAge int, production bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, maxAge, "/", "", production, true)
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *gin.Context, production bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", production, true)
}
