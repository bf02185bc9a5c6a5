package errs

import "errors"

// Domain-specific sentinel errors for the booking screen usecases
var (
	// Room errors
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomNotBookable = errors.New("room is not bookable")

	// Booking flow errors
	ErrFlowNotFound     = errors.New("booking flow not found")
	ErrInvalidStay      = errors.New("invalid stay dates")
	ErrInvalidOccupancy = errors.New("invalid guest counts")
	ErrQuoteRequired    = errors.New("quote required before submit")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingCancelled = errors.New("booking is cancelled")
	ErrNothingToPay     = errors.New("nothing to pay")

	// Payment errors
	ErrPaymentDeclined = errors.New("payment declined")

	// Session errors
	ErrAuthRequired = errors.New("authentication required")

	// Operation errors
	ErrGatewayOperationFailed = errors.New("gateway operation failed")
)
