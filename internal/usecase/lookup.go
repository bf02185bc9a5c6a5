package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/venkatbala210/hotel-management-system/internal/domain/booking"
	"github.com/venkatbala210/hotel-management-system/internal/domain/payment"
	"github.com/venkatbala210/hotel-management-system/internal/gateway"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/errs"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/session"
)

var ErrConfirmationCodeRequired = errs.New("booking confirmation code is required")

// BookingLookup backs the public find-booking screen: lookup by confirmation
// code, plus late payment for a confirmed booking that was never paid.
type BookingLookup interface {
	Find(ctx context.Context, code string) (*gateway.BookingDTO, error)
	PayOutstanding(ctx context.Context, sess *session.Session, code string, form payment.CaptureForm) (*gateway.BookingDTO, error)
}

type bookingLookupImpl struct {
	bookings BookingGateway
	payments PaymentGateway
	logger   *slog.Logger
}

func NewBookingLookup(bookings BookingGateway, payments PaymentGateway, logger *slog.Logger) BookingLookup {
	return &bookingLookupImpl{bookings: bookings, payments: payments, logger: logger}
}

func (l *bookingLookupImpl) Find(ctx context.Context, code string) (*gateway.BookingDTO, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrConfirmationCodeRequired
	}
	return l.bookings.BookingByConfirmationCode(ctx, code)
}

// PayOutstanding settles an unpaid booking found by code. The amount is the
// same inclusive-nights quote the booking screen showed; when it cannot be
// derived (fallback room, missing price) the payment is refused rather than
// sent as zero.
func (l *bookingLookupImpl) PayOutstanding(ctx context.Context, sess *session.Session, code string, form payment.CaptureForm) (*gateway.BookingDTO, error) {
	dto, err := l.Find(ctx, code)
	if err != nil {
		return nil, err
	}
	if booking.Status(dto.Status) == booking.StatusCancelled {
		return dto, errs.ErrBookingCancelled
	}
	if dto.Payment != nil {
		return dto, errs.ErrNothingToPay
	}
	// The embedded payment slot can lag; ask the payment record directly
	// before charging a second time.
	if settled, lookupErr := l.payments.PaymentByBookingID(ctx, sess.Token(), dto.ID); lookupErr == nil &&
		settled != nil && payment.Status(settled.Status) == payment.StatusSuccess {
		return dto, errs.ErrNothingToPay
	}

	amount := outstandingAmount(dto)
	if amount <= 0 {
		return dto, errs.ErrNothingToPay
	}

	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		return dto, &PaymentFieldErrors{Fields: fieldErrs}
	}

	result, err := l.payments.ProcessPayment(ctx, sess.Token(), dto.ID, amount)
	if err != nil {
		return dto, errs.Mark(err, errs.ErrPaymentDeclined)
	}
	if payment.Status(result.Status) != payment.StatusSuccess {
		return dto, errs.ErrPaymentDeclined
	}

	// Re-fetch instead of patching local state; the gateway owns the record.
	refreshed, err := l.bookings.BookingByConfirmationCode(ctx, code)
	if err != nil {
		l.logger.Warn("booking refresh after payment failed", "error", err)
		return dto, nil
	}
	return refreshed, nil
}

func outstandingAmount(dto *gateway.BookingDTO) float64 {
	if dto.Room == nil || dto.Room.RoomPrice <= 0 {
		return 0
	}
	checkIn, errIn := time.Parse("2006-01-02", dto.CheckInDate)
	checkOut, errOut := time.Parse("2006-01-02", dto.CheckOutDate)
	if errIn != nil || errOut != nil {
		return 0
	}

	adults := dto.NumOfAdults
	if adults < 1 {
		adults = 1
	}
	quote, err := booking.ComputeQuote(
		booking.Stay{CheckIn: checkIn, CheckOut: checkOut},
		dto.Room.RoomPrice,
		adults,
		max(dto.NumOfChildren, 0),
	)
	if err != nil {
		return 0
	}
	return quote.Total
}
