package api

import (
	"net/http"
	"strconv"

	resdto "github.com/venkatbala210/hotel-management-system/internal/handler/dto/response"
	"github.com/venkatbala210/hotel-management-system/internal/handler/httperr"
	"github.com/venkatbala210/hotel-management-system/internal/handler/middleware"
	"github.com/venkatbala210/hotel-management-system/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profile usecase.ProfileQueries
}

func NewProfileHandler(profile usecase.ProfileQueries) *ProfileHandler {
	return &ProfileHandler{profile: profile}
}

// @Summary Get profile
// @Description Logged-in user's identity and booking history
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Failure 401 {object} httperr.Response
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	sess := middleware.GetSession(c)
	user, err := h.profile.Profile(c.Request.Context(), sess)
	if err != nil {
		httperr.AbortWithBanner(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserDTO(user))
}

// @Summary Cancel a booking
// @Description Cancel one of the user's bookings and return the refreshed profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /profile/bookings/{id}/cancel [post]
func (h *ProfileHandler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	sess := middleware.GetSession(c)
	user, err := h.profile.CancelBooking(c.Request.Context(), sess, bookingID)
	if err != nil {
		httperr.AbortWithBanner(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserDTO(user))
}
