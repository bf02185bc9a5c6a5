package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/venkatbala210/hotel-management-system/internal/domain/booking"
	"github.com/venkatbala210/hotel-management-system/internal/domain/payment"
	"github.com/venkatbala210/hotel-management-system/internal/domain/room"
	"github.com/venkatbala210/hotel-management-system/internal/gateway"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/clock"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/config"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/errs"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/session"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/timer"

	"github.com/google/uuid"
)

type FlowState string

const (
	StateBrowsing        FlowState = "BROWSING"
	StateDatesSelected   FlowState = "DATES_SELECTED"
	StateQuoted          FlowState = "QUOTED"
	StateSubmitting      FlowState = "SUBMITTING"
	StateBooked          FlowState = "BOOKED"
	StatePaymentPending  FlowState = "PAYMENT_PENDING"
	StatePaymentSettled  FlowState = "PAYMENT_SETTLED"
	StatePaymentFailed   FlowState = "PAYMENT_FAILED"
)

// Notice is a transient banner with a display deadline; reads past the
// deadline see no banner at all (the 5-second auto-dismiss).
type Notice struct {
	Message   string
	ExpiresAt time.Time
}

// Flow is one booking attempt from "Book Now" to the post-booking redirect.
// All state a browser tab would hold lives here instead.
type Flow struct {
	ID               uuid.UUID
	Room             room.Room
	State            FlowState
	Stay             booking.Stay
	Adults           int
	Children         int
	Quote            *booking.Quote
	UserID           int64
	BookingID        int64
	ConfirmationCode string
	Notice           *Notice
	RedirectTo       string
	CreatedAt        time.Time
}

// LoginRedirect tells the handler to send the user to the login screen and
// where to bring them back afterwards.
type LoginRedirect struct {
	From string
}

func (e *LoginRedirect) Error() string {
	return "login required, return to " + e.From
}

// PaymentFieldErrors carries per-field messages for a rejected payment form.
type PaymentFieldErrors struct {
	Fields payment.FieldErrors
}

func (e *PaymentFieldErrors) Error() string {
	return "payment form validation failed"
}

type BookingWorkflow interface {
	Start(ctx context.Context, sess *session.Session, roomID int64) (Flow, error)
	ConfirmDates(ctx context.Context, flowID uuid.UUID, checkIn, checkOut time.Time, adults, children int) (Flow, error)
	Submit(ctx context.Context, sess *session.Session, flowID uuid.UUID) (Flow, error)
	CapturePayment(ctx context.Context, sess *session.Session, flowID uuid.UUID, form payment.CaptureForm) (Flow, error)
	Get(flowID uuid.UUID) (Flow, error)
	Teardown(flowID uuid.UUID)
}

type bookingWorkflowImpl struct {
	rooms     RoomGateway
	bookings  BookingGateway
	payments  PaymentGateway
	users     UserGateway
	scheduler timer.Scheduler
	clock     clock.Clock
	cfg       config.WorkflowConfig
	logger    *slog.Logger

	mu    sync.Mutex
	flows map[uuid.UUID]*flowRecord
}

type flowRecord struct {
	flow      Flow
	navHandle timer.Handle
}

func NewBookingWorkflow(
	rooms RoomGateway,
	bookings BookingGateway,
	payments PaymentGateway,
	users UserGateway,
	scheduler timer.Scheduler,
	clk clock.Clock,
	cfg config.WorkflowConfig,
	logger *slog.Logger,
) BookingWorkflow {
	return &bookingWorkflowImpl{
		rooms:     rooms,
		bookings:  bookings,
		payments:  payments,
		users:     users,
		scheduler: scheduler,
		clock:     clk,
		cfg:       cfg,
		logger:    logger,
		flows:     make(map[uuid.UUID]*flowRecord),
	}
}

func roomReturnPath(roomID int64) string {
	return fmt.Sprintf("/room-details-book/%d", roomID)
}

// Start opens the date picker for a room: the Browsing -> DatesSelected
// transition. Unauthenticated users are bounced to login with the room page
// as the return path. Starting a new attempt supersedes any earlier one, so
// every pending auto-navigation is cancelled first.
func (w *bookingWorkflowImpl) Start(ctx context.Context, sess *session.Session, roomID int64) (Flow, error) {
	if !sess.IsAuthenticated() {
		return Flow{}, &LoginRedirect{From: roomReturnPath(roomID)}
	}

	rm, _, err := w.rooms.RoomByID(ctx, roomID)
	if err != nil {
		if gateway.IsKind(err, gateway.KindNotFound) {
			return Flow{}, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return Flow{}, errs.Mark(err, errs.ErrGatewayOperationFailed)
	}
	if !rm.IsBookable() {
		return Flow{}, errs.ErrRoomNotBookable
	}

	flow := Flow{
		ID:        uuid.New(),
		Room:      rm,
		State:     StateDatesSelected,
		CreatedAt: w.clock.Now(),
	}

	// Best effort: cache the acting user's id now so submit can skip a
	// round trip. A failure here just defers the lookup.
	if profile, profErr := w.users.Profile(ctx, sess.Token()); profErr == nil {
		flow.UserID = profile.ID
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.cancelPendingNavigationsLocked(flow.UserID)
	w.sweepLocked()
	w.flows[flow.ID] = &flowRecord{flow: flow}
	return flow, nil
}

// ConfirmDates runs the quote calculator: DatesSelected -> Quoted. Invalid
// input keeps the state where it is and raises a 5-second banner.
func (w *bookingWorkflowImpl) ConfirmDates(ctx context.Context, flowID uuid.UUID, checkIn, checkOut time.Time, adults, children int) (Flow, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	rec, ok := w.flows[flowID]
	if !ok {
		return Flow{}, errs.ErrFlowNotFound
	}

	stay, err := booking.NewStay(checkIn, checkOut)
	if err != nil {
		rec.flow.State = StateDatesSelected
		w.raiseNoticeLocked(rec, "Please select check-in and check-out dates.")
		return rec.flow, errs.Mark(err, errs.ErrInvalidStay)
	}

	quote, err := booking.ComputeQuote(stay, rec.flow.Room.Price, adults, children)
	if err != nil {
		rec.flow.State = StateDatesSelected
		w.raiseNoticeLocked(rec, "Please enter valid numbers for adults and children.")
		return rec.flow, errs.Mark(err, errs.ErrInvalidOccupancy)
	}

	rec.flow.Stay = stay
	rec.flow.Adults = adults
	rec.flow.Children = children
	rec.flow.Quote = &quote
	rec.flow.State = StateQuoted
	rec.flow.Notice = nil
	return rec.flow, nil
}

// Submit creates the booking: Quoted -> Submitting -> Booked, then either
// into the payment branch (total > 0) or onto the delayed return to the room
// list.
func (w *bookingWorkflowImpl) Submit(ctx context.Context, sess *session.Session, flowID uuid.UUID) (Flow, error) {
	w.mu.Lock()
	rec, ok := w.flows[flowID]
	if !ok {
		w.mu.Unlock()
		return Flow{}, errs.ErrFlowNotFound
	}
	if rec.flow.State != StateQuoted {
		flow := rec.flow
		w.mu.Unlock()
		return flow, errs.ErrQuoteRequired
	}
	if !sess.IsAuthenticated() {
		flow := rec.flow
		w.mu.Unlock()
		return flow, &LoginRedirect{From: roomReturnPath(flow.Room.ID)}
	}
	rec.flow.State = StateSubmitting
	flow := rec.flow
	w.mu.Unlock()

	userID := flow.UserID
	if userID == 0 {
		profile, err := w.users.Profile(ctx, sess.Token())
		if err != nil {
			return w.failSubmit(flowID, StateQuoted, "Please log in to make a booking.",
				&LoginRedirect{From: roomReturnPath(flow.Room.ID)})
		}
		userID = profile.ID
	}

	// The gateway wants plain calendar dates; normalize in the picker's
	// own calendar instead of shifting through UTC.
	stay := flow.Stay.Normalize()
	req := gateway.BookingRequest{
		CheckInDate:   stay.CheckInDate(),
		CheckOutDate:  stay.CheckOutDate(),
		NumOfAdults:   flow.Adults,
		NumOfChildren: flow.Children,
	}

	result, err := w.bookings.CreateBooking(ctx, sess.Token(), flow.Room.ID, userID, req)
	if err != nil {
		return w.failSubmit(flowID, StateQuoted, gateway.MessageOf(err), err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	rec, ok = w.flows[flowID]
	if !ok {
		return Flow{}, errs.ErrFlowNotFound
	}
	rec.flow.UserID = userID
	rec.flow.BookingID = result.BookingID
	rec.flow.ConfirmationCode = result.ConfirmationCode
	rec.flow.Notice = nil
	rec.flow.State = StateBooked

	if result.BookingID != 0 && rec.flow.Quote != nil && rec.flow.Quote.Total > 0 {
		rec.flow.State = StatePaymentPending
	} else {
		w.scheduleNavigationLocked(rec)
	}
	return rec.flow, nil
}

// CapturePayment settles the booking: PaymentPending -> PaymentSettled on
// success, -> PaymentFailed on decline. A failed capture leaves the user on
// the page to retry; nothing retries automatically.
func (w *bookingWorkflowImpl) CapturePayment(ctx context.Context, sess *session.Session, flowID uuid.UUID, form payment.CaptureForm) (Flow, error) {
	w.mu.Lock()
	rec, ok := w.flows[flowID]
	if !ok {
		w.mu.Unlock()
		return Flow{}, errs.ErrFlowNotFound
	}
	if rec.flow.State != StatePaymentPending && rec.flow.State != StatePaymentFailed {
		flow := rec.flow
		w.mu.Unlock()
		return flow, errs.ErrNothingToPay
	}
	flow := rec.flow
	w.mu.Unlock()

	if fieldErrs := form.Validate(); len(fieldErrs) > 0 {
		return flow, &PaymentFieldErrors{Fields: fieldErrs}
	}

	result, err := w.payments.ProcessPayment(ctx, sess.Token(), flow.BookingID, flow.Quote.Total)
	if err != nil || payment.Status(result.Status) != payment.StatusSuccess {
		w.mu.Lock()
		defer w.mu.Unlock()
		if rec, ok = w.flows[flowID]; !ok {
			return Flow{}, errs.ErrFlowNotFound
		}
		rec.flow.State = StatePaymentFailed
		msg := "Payment processing failed. Please try again."
		if err != nil {
			msg = gateway.MessageOf(err)
		}
		w.raiseNoticeLocked(rec, msg)
		if err == nil {
			err = errs.ErrPaymentDeclined
		}
		return rec.flow, errs.Mark(err, errs.ErrPaymentDeclined)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if rec, ok = w.flows[flowID]; !ok {
		return Flow{}, errs.ErrFlowNotFound
	}
	rec.flow.State = StatePaymentSettled
	rec.flow.Notice = nil
	w.scheduleNavigationLocked(rec)
	return rec.flow, nil
}

func (w *bookingWorkflowImpl) Get(flowID uuid.UUID) (Flow, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	rec, ok := w.flows[flowID]
	if !ok {
		return Flow{}, errs.ErrFlowNotFound
	}
	w.expireNoticeLocked(rec)
	return rec.flow, nil
}

// Teardown is the component-unmount hook: it cancels any pending navigation
// so a stale redirect cannot fire later.
func (w *bookingWorkflowImpl) Teardown(flowID uuid.UUID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if rec, ok := w.flows[flowID]; ok {
		if rec.navHandle != nil {
			rec.navHandle.Cancel()
		}
		delete(w.flows, flowID)
	}
}

func (w *bookingWorkflowImpl) failSubmit(flowID uuid.UUID, state FlowState, notice string, err error) (Flow, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	rec, ok := w.flows[flowID]
	if !ok {
		return Flow{}, errs.ErrFlowNotFound
	}
	rec.flow.State = state
	w.raiseNoticeLocked(rec, notice)
	return rec.flow, err
}

func (w *bookingWorkflowImpl) raiseNoticeLocked(rec *flowRecord, message string) {
	rec.flow.Notice = &Notice{
		Message:   message,
		ExpiresAt: w.clock.Now().Add(w.cfg.ErrorDisplay),
	}
}

func (w *bookingWorkflowImpl) expireNoticeLocked(rec *flowRecord) {
	if rec.flow.Notice != nil && w.clock.Now().After(rec.flow.Notice.ExpiresAt) {
		rec.flow.Notice = nil
	}
}

func (w *bookingWorkflowImpl) scheduleNavigationLocked(rec *flowRecord) {
	if rec.navHandle != nil {
		rec.navHandle.Cancel()
	}
	id := rec.flow.ID
	rec.navHandle = w.scheduler.Schedule(w.cfg.NavigationDelay, func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if current, ok := w.flows[id]; ok {
			current.flow.RedirectTo = "/rooms"
			current.flow.Notice = nil
		}
	})
}

// cancelPendingNavigationsLocked cancels the auto-navigation of the acting
// user's earlier attempts only; other users' redirects must still fire. An
// unknown user id (profile lookup deferred) supersedes nothing.
func (w *bookingWorkflowImpl) cancelPendingNavigationsLocked(userID int64) {
	if userID == 0 {
		return
	}
	for _, rec := range w.flows {
		if rec.flow.UserID != userID {
			continue
		}
		if rec.navHandle != nil {
			rec.navHandle.Cancel()
			rec.navHandle = nil
		}
	}
}

// sweepLocked drops flows past their TTL so abandoned tabs do not pile up.
func (w *bookingWorkflowImpl) sweepLocked() {
	cutoff := w.clock.Now().Add(-w.cfg.FlowTTL)
	for id, rec := range w.flows {
		if rec.flow.CreatedAt.Before(cutoff) {
			if rec.navHandle != nil {
				rec.navHandle.Cancel()
			}
			delete(w.flows, id)
		}
	}
}
