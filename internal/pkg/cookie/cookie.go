package cookie

import (
	"net/http"
	"time"

	"github.com/venkatbala210/hotel-management-system/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	TokenCookieName = "token"
	RoleCookieName  = "role"
)

// The browser keeps the gateway token and role between visits; these helpers
// are the server-side half of that storage for clients that prefer cookies
// over the Authorization header.

func SetSessionCookies(c *gin.Context, cfg config.CookieConfig, token, role string, expiry time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))

	c.SetCookie(
		TokenCookieName,
		token,
		int(expiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)

	// Role is rendered by the UI (navbar, admin links) so it stays readable
	c.SetCookie(
		RoleCookieName,
		role,
		int(expiry.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		false,
	)
}

func ClearSessionCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(TokenCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
	c.SetCookie(RoleCookieName, "", -1, "/", cfg.Domain, cfg.Secure, false)
}

func GetToken(c *gin.Context) string {
	token, _ := c.Cookie(TokenCookieName)
	return token
}

func GetRole(c *gin.Context) string {
	role, _ := c.Cookie(RoleCookieName)
	return role
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
