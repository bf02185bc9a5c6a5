package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/venkatbala210/hotel-management-system/internal/domain/booking"
	reqdto "github.com/venkatbala210/hotel-management-system/internal/handler/dto/request"
	resdto "github.com/venkatbala210/hotel-management-system/internal/handler/dto/response"
	"github.com/venkatbala210/hotel-management-system/internal/handler/httperr"
	"github.com/venkatbala210/hotel-management-system/internal/handler/middleware"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/errs"
	"github.com/venkatbala210/hotel-management-system/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	availability usecase.AvailabilityQueries
}

func NewRoomHandler(availability usecase.AvailabilityQueries) *RoomHandler {
	return &RoomHandler{availability: availability}
}

// @Summary List rooms
// @Description List rooms for browsing, optionally filtered by type
// @Tags rooms
// @Produce json
// @Param roomType query string false "Filter by room type"
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	sess := middleware.GetSession(c)
	rooms := h.availability.Browse(c.Request.Context(), sess, c.Query("roomType"))
	c.JSON(http.StatusOK, resdto.FromRooms(rooms))
}

// @Summary Search rooms
// @Description Search rooms by stay dates and room type
// @Tags rooms
// @Produce json
// @Param checkInDate query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOutDate query string true "Check-out date (YYYY-MM-DD)"
// @Param roomType query string true "Room type"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/search [get]
func (h *RoomHandler) SearchRooms(c *gin.Context) {
	var req reqdto.SearchRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	checkIn, errIn := time.Parse("2006-01-02", req.CheckInDate)
	checkOut, errOut := time.Parse("2006-01-02", req.CheckOutDate)
	if errIn != nil || errOut != nil || req.RoomType == "" {
		httperr.AbortWithBanner(c, errs.ErrInvalidStay)
		return
	}

	sess := middleware.GetSession(c)
	stay := booking.Stay{CheckIn: checkIn, CheckOut: checkOut}
	rooms := h.availability.Search(c.Request.Context(), sess, stay, req.RoomType)
	c.JSON(http.StatusOK, resdto.FromRooms(rooms))
}

// @Summary List room types
// @Description Distinct room types for the search filter
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.RoomTypesResponse
// @Router /rooms/types [get]
func (h *RoomHandler) RoomTypes(c *gin.Context) {
	types := h.availability.RoomTypes(c.Request.Context())
	c.JSON(http.StatusOK, resdto.RoomTypesResponse{RoomTypes: types})
}

// @Summary Get room details
// @Description Room details with its existing bookings
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} resdto.RoomDetailsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room ID format", nil)
		return
	}

	rm, bookings, err := h.availability.RoomDetails(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithBanner(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.RoomDetailsResponse{
		Room:     resdto.FromRoom(rm),
		Bookings: resdto.FromBookingDTOs(bookings),
	})
}
