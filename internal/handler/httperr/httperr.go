package httperr

import (
	"errors"
	"net/http"

	"github.com/venkatbala210/hotel-management-system/internal/gateway"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/errs"
	"github.com/venkatbala210/hotel-management-system/internal/usecase"

	"github.com/gin-gonic/gin"
)

// Banner is the single error surface the screens know: a message plus a
// dismissal policy. AutoDismiss banners clear themselves after the workflow's
// error-display window; the rest stay until the user closes them.
type Banner struct {
	Kind        string `json:"kind"`
	Message     string `json:"message"`
	AutoDismiss bool   `json:"autoDismiss"`
}

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Banner   *Banner `json:"banner,omitempty"`
	Redirect string  `json:"redirect,omitempty"`
	From     string  `json:"from,omitempty"`
	Detail   any     `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	abort(c, resp)
}

// AbortWithBanner is the one place status codes and error kinds turn into
// banners. Handlers pass every failure through here; nothing else in the
// handler layer inspects error types.
func AbortWithBanner(c *gin.Context, err error) {
	if err == nil {
		panic("AbortWithBanner: err cannot be nil")
	}

	resp := classify(err)
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

// AbortWithBannerState additionally attaches the caller's current state so
// the screen can re-render without a follow-up read. Field-level details from
// the error itself take precedence.
func AbortWithBannerState(c *gin.Context, err error, state any) {
	if err == nil {
		panic("AbortWithBannerState: err cannot be nil")
	}

	resp := classify(err)
	if resp.Detail == nil {
		resp.Detail = state
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

func abort(c *gin.Context, resp Response) {
	_ = c.Error(gin.Error{
		Err:  errors.New(resp.Error.Message),
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}

func classify(err error) Response {
	var redirect *usecase.LoginRedirect
	if errors.As(err, &redirect) {
		return loginResponse(redirect.From)
	}

	var fieldErrs *usecase.PaymentFieldErrors
	if errors.As(err, &fieldErrs) {
		resp := banner(http.StatusUnprocessableEntity, "validation", "Please correct the highlighted fields.", true)
		resp.Detail = fieldErrs.Fields
		return resp
	}

	switch {
	case errors.Is(err, errs.ErrAuthRequired) || gateway.IsKind(err, gateway.KindAuth):
		return loginResponse("")

	case gateway.IsKind(err, gateway.KindForbidden):
		return banner(http.StatusForbidden, "forbidden",
			"Access denied. Please log in with the required role.", false)

	case errors.Is(err, errs.ErrRoomNotFound),
		errors.Is(err, errs.ErrBookingNotFound),
		errors.Is(err, errs.ErrFlowNotFound),
		gateway.IsKind(err, gateway.KindNotFound):
		return banner(http.StatusNotFound, "not_found", messageFor(err), false)

	case errors.Is(err, errs.ErrInvalidStay),
		errors.Is(err, errs.ErrInvalidOccupancy),
		errors.Is(err, usecase.ErrConfirmationCodeRequired),
		gateway.IsKind(err, gateway.KindValidation):
		return banner(http.StatusBadRequest, "validation", messageFor(err), true)

	case errors.Is(err, errs.ErrRoomNotBookable),
		errors.Is(err, errs.ErrQuoteRequired),
		errors.Is(err, errs.ErrBookingCancelled),
		errors.Is(err, errs.ErrNothingToPay):
		return banner(http.StatusConflict, "conflict", err.Error(), false)

	case errors.Is(err, errs.ErrPaymentDeclined):
		return banner(http.StatusPaymentRequired, "payment_failed", messageFor(err), true)

	default:
		return banner(http.StatusServiceUnavailable, "transient",
			"Service temporarily unavailable. Please try again.", false)
	}
}

// messageFor prefers the upstream display message and falls back to screen
// wording for local sentinels.
func messageFor(err error) string {
	var e *gateway.Error
	if errors.As(err, &e) {
		return e.Message
	}
	switch {
	case errors.Is(err, errs.ErrInvalidStay):
		return "Please select check-in and check-out dates."
	case errors.Is(err, errs.ErrInvalidOccupancy):
		return "Please enter valid numbers for adults and children."
	case errors.Is(err, usecase.ErrConfirmationCodeRequired):
		return "Please enter a booking confirmation code."
	case errors.Is(err, errs.ErrPaymentDeclined):
		return "Payment processing failed. Please try again."
	}
	return err.Error()
}

func banner(status int, kind, message string, autoDismiss bool) Response {
	resp := Response{Status: status}
	resp.Error.Message = message
	resp.Banner = &Banner{Kind: kind, Message: message, AutoDismiss: autoDismiss}
	return resp
}

func loginResponse(from string) Response {
	resp := banner(http.StatusUnauthorized, "auth", "Please log in to continue.", false)
	resp.Redirect = "/login"
	resp.From = from
	return resp
}
