package api

import (
	"net/http"

	reqdto "github.com/venkatbala210/hotel-management-system/internal/handler/dto/request"
	resdto "github.com/venkatbala210/hotel-management-system/internal/handler/dto/response"
	"github.com/venkatbala210/hotel-management-system/internal/handler/httperr"
	"github.com/venkatbala210/hotel-management-system/internal/handler/middleware"
	"github.com/venkatbala210/hotel-management-system/internal/usecase"

	"github.com/gin-gonic/gin"
)

// LookupHandler serves the public find-booking screen.
type LookupHandler struct {
	lookup usecase.BookingLookup
}

func NewLookupHandler(lookup usecase.BookingLookup) *LookupHandler {
	return &LookupHandler{lookup: lookup}
}

// @Summary Find a booking
// @Description Look up a booking by its confirmation code
// @Tags bookings
// @Produce json
// @Param code path string true "Booking confirmation code"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{code} [get]
func (h *LookupHandler) FindBooking(c *gin.Context) {
	dto, err := h.lookup.Find(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.AbortWithBanner(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingDTO(dto))
}

// @Summary Pay an outstanding booking
// @Description Settle a confirmed but unpaid booking found by code
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Booking confirmation code"
// @Param request body reqdto.CapturePaymentRequest true "Payment form"
// @Success 200 {object} resdto.BookingResponse
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{code}/payment [post]
func (h *LookupHandler) PayOutstanding(c *gin.Context) {
	var req reqdto.CapturePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	sess := middleware.GetSession(c)
	dto, err := h.lookup.PayOutstanding(c.Request.Context(), sess, c.Param("code"), req.ToForm())
	if err != nil {
		httperr.AbortWithBannerState(c, err, resdto.FromBookingDTO(dto))
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingDTO(dto))
}
