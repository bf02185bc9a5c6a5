package api

import (
	"net/http"
	"time"

	reqdto "github.com/venkatbala210/hotel-management-system/internal/handler/dto/request"
	resdto "github.com/venkatbala210/hotel-management-system/internal/handler/dto/response"
	"github.com/venkatbala210/hotel-management-system/internal/handler/httperr"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/config"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/cookie"
	"github.com/venkatbala210/hotel-management-system/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Tokens from the upstream expire in a week; the cookie mirror of the
// browser's local storage uses the same horizon.
const sessionCookieTTL = 7 * 24 * time.Hour

type AuthHandler struct {
	auth usecase.AuthProxy
	cfg  config.CookieConfig
}

func NewAuthHandler(auth usecase.AuthProxy, cfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{auth: auth, cfg: cfg}
}

// @Summary Log in
// @Description Exchange credentials for a session token and role
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.AbortWithBanner(c, err)
		return
	}

	cookie.SetSessionCookies(c, h.cfg, result.Token, result.Role, sessionCookieTTL)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result, req.From))
}

// @Summary Log out
// @Description Clear the session cookies
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookies(c, h.cfg)
	c.Status(http.StatusNoContent)
}
