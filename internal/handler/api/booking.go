package api

import (
	"net/http"

	reqdto "github.com/venkatbala210/hotel-management-system/internal/handler/dto/request"
	resdto "github.com/venkatbala210/hotel-management-system/internal/handler/dto/response"
	"github.com/venkatbala210/hotel-management-system/internal/handler/httperr"
	"github.com/venkatbala210/hotel-management-system/internal/handler/middleware"
	"github.com/venkatbala210/hotel-management-system/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingFlowHandler drives one booking attempt through its states. Every
// response is the full flow snapshot; failures that leave the flow alive
// attach the snapshot too so the screen re-renders in place.
type BookingFlowHandler struct {
	workflow usecase.BookingWorkflow
}

func NewBookingFlowHandler(workflow usecase.BookingWorkflow) *BookingFlowHandler {
	return &BookingFlowHandler{workflow: workflow}
}

// @Summary Start a booking flow
// @Description Open the date picker for a room
// @Tags flows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.StartFlowRequest true "Room to book"
// @Success 201 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /flows [post]
func (h *BookingFlowHandler) StartFlow(c *gin.Context) {
	var req reqdto.StartFlowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	sess := middleware.GetSession(c)
	flow, err := h.workflow.Start(c.Request.Context(), sess, req.RoomID)
	if err != nil {
		httperr.AbortWithBanner(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromFlow(flow))
}

// @Summary Get a booking flow
// @Description Current snapshot of a booking attempt
// @Tags flows
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 404 {object} httperr.Response
// @Router /flows/{id} [get]
func (h *BookingFlowHandler) GetFlow(c *gin.Context) {
	flowID, ok := h.flowID(c)
	if !ok {
		return
	}
	flow, err := h.workflow.Get(flowID)
	if err != nil {
		httperr.AbortWithBanner(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlow(flow))
}

// @Summary Confirm stay dates
// @Description Price the stay and move the flow to quoted
// @Tags flows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flow ID"
// @Param request body reqdto.ConfirmDatesRequest true "Stay dates and guests"
// @Success 200 {object} resdto.FlowResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /flows/{id}/dates [post]
func (h *BookingFlowHandler) ConfirmDates(c *gin.Context) {
	flowID, ok := h.flowID(c)
	if !ok {
		return
	}

	var req reqdto.ConfirmDatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	flow, err := h.workflow.ConfirmDates(c.Request.Context(), flowID,
		req.CheckIn(), req.CheckOut(), req.NumOfAdults, req.NumOfChildren)
	if err != nil {
		httperr.AbortWithBannerState(c, err, resdto.FromFlow(flow))
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlow(flow))
}

// @Summary Submit the booking
// @Description Create the booking upstream from a quoted flow
// @Tags flows
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flow ID"
// @Success 200 {object} resdto.FlowResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /flows/{id}/submit [post]
func (h *BookingFlowHandler) Submit(c *gin.Context) {
	flowID, ok := h.flowID(c)
	if !ok {
		return
	}

	sess := middleware.GetSession(c)
	flow, err := h.workflow.Submit(c.Request.Context(), sess, flowID)
	if err != nil {
		httperr.AbortWithBannerState(c, err, resdto.FromFlow(flow))
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlow(flow))
}

// @Summary Capture payment
// @Description Settle a booked flow with the payment form
// @Tags flows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Flow ID"
// @Param request body reqdto.CapturePaymentRequest true "Payment form"
// @Success 200 {object} resdto.FlowResponse
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /flows/{id}/payment [post]
func (h *BookingFlowHandler) CapturePayment(c *gin.Context) {
	flowID, ok := h.flowID(c)
	if !ok {
		return
	}

	var req reqdto.CapturePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	sess := middleware.GetSession(c)
	flow, err := h.workflow.CapturePayment(c.Request.Context(), sess, flowID, req.ToForm())
	if err != nil {
		httperr.AbortWithBannerState(c, err, resdto.FromFlow(flow))
		return
	}
	c.JSON(http.StatusOK, resdto.FromFlow(flow))
}

// @Summary Abandon a booking flow
// @Description Drop the flow and cancel any pending navigation
// @Tags flows
// @Security BearerAuth
// @Param id path string true "Flow ID"
// @Success 204
// @Router /flows/{id} [delete]
func (h *BookingFlowHandler) Teardown(c *gin.Context) {
	flowID, ok := h.flowID(c)
	if !ok {
		return
	}
	h.workflow.Teardown(flowID)
	c.Status(http.StatusNoContent)
}

func (h *BookingFlowHandler) flowID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid flow ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
