package middleware

import (
	"strings"

	"github.com/venkatbala210/hotel-management-system/internal/handler/httperr"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/cookie"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/session"
	"github.com/venkatbala210/hotel-management-system/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxSessionKey = "session"

// AttachSession builds the session for every request from whatever credential
// the browser sent: the Authorization header wins, cookies are the fallback.
// Requests with no credential get an anonymous session; route guards and the
// gateway decide what that is allowed to do.
func AttachSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		role := session.Role(strings.ToUpper(c.GetHeader("X-User-Role")))

		if token == "" {
			token = cookie.GetToken(c)
			role = session.Role(strings.ToUpper(cookie.GetRole(c)))
		}
		if token != "" && role == session.RoleNone {
			role = session.RoleFromToken(token)
		}

		if token == "" {
			c.Set(ctxSessionKey, session.Anonymous())
		} else {
			c.Set(ctxSessionKey, session.New(token, role))
		}
		c.Next()
	}
}

// RequireAuth guards routes that have no meaning for anonymous visitors. The
// rejection carries the path the user was heading to so the login screen can
// send them back afterwards.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetSession(c).IsAuthenticated() {
			httperr.AbortWithBanner(c, &usecase.LoginRedirect{From: c.Request.URL.Path})
			return
		}
		c.Next()
	}
}

func GetSession(c *gin.Context) *session.Session {
	if v, exists := c.Get(ctxSessionKey); exists {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return session.Anonymous()
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
