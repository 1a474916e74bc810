package middlewares

import (
	"net/http"

	"github.com/polycheckone/baza-kalorii/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware gates pages and data endpoints behind the session cookie.
// Callers without a valid session are redirected to the login page. On
// success the logged-in login and guest flag land in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("sesja")
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		login, gosc, err := utils.ParseSessionToken(token)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("login", login)
		c.Set("gosc", gosc)
		c.Next()
	}
}
