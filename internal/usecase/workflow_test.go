//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/venkatbala210/hotel-management-system/internal/domain/payment"
	"github.com/venkatbala210/hotel-management-system/internal/domain/room"
	"github.com/venkatbala210/hotel-management-system/internal/gateway"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/clock"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/config"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/errs"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/session"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/timer"
	"github.com/venkatbala210/hotel-management-system/internal/usecase"

	"github.com/stretchr/testify/suite"
)

type WorkflowTestSuite struct {
	suite.Suite
	ctx      context.Context
	sess     *session.Session
	rooms    *fakeRoomGateway
	bookings *fakeBookingGateway
	payments *fakePaymentGateway
	users    *fakeUserGateway
	sched    *timer.MockScheduler
	clk      *clock.MockClock
	workflow usecase.BookingWorkflow
}

func (s *WorkflowTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.sess = session.New("test-token", session.RoleUser)
	s.rooms = &fakeRoomGateway{
		roomByID: room.Room{ID: 7, Type: "Deluxe King", Price: 100},
	}
	s.bookings = &fakeBookingGateway{
		createResult: gateway.BookingResult{BookingID: 11, ConfirmationCode: "CONF-7781"},
	}
	s.payments = &fakePaymentGateway{
		result: gateway.PaymentResult{Status: "SUCCESS", Amount: 300},
	}
	s.users = &fakeUserGateway{profile: &gateway.UserDTO{ID: 42}}
	s.sched = timer.NewMockScheduler()
	s.clk = clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	s.workflow = usecase.NewBookingWorkflow(
		s.rooms, s.bookings, s.payments, s.users,
		s.sched, s.clk, config.NewTestConfig().Workflow,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestWorkflowSuite(t *testing.T) {
	suite.Run(t, new(WorkflowTestSuite))
}

func (s *WorkflowTestSuite) validForm() payment.CaptureForm {
	return payment.CaptureForm{
		Email:      "guest@example.com",
		CardNumber: "4242424242424242",
		Expiry:     "1225",
		CVC:        "123",
	}
}

func (s *WorkflowTestSuite) quotedFlow() usecase.Flow {
	flow, err := s.workflow.Start(s.ctx, s.sess, 7)
	s.Require().NoError(err)

	flow, err = s.workflow.ConfirmDates(s.ctx, flow.ID,
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		2, 0)
	s.Require().NoError(err)
	return flow
}

func (s *WorkflowTestSuite) TestStart() {
	s.Run("anonymous start bounces to login with the room return path", func() {
		_, err := s.workflow.Start(s.ctx, session.Anonymous(), 7)

		var redirect *usecase.LoginRedirect
		s.Require().ErrorAs(err, &redirect)
		s.Equal("/room-details-book/7", redirect.From)
	})

	s.Run("unbookable room is rejected", func() {
		s.rooms.roomByID = room.Room{}
		_, err := s.workflow.Start(s.ctx, s.sess, 7)
		s.ErrorIs(err, errs.ErrRoomNotBookable)
	})

	s.Run("successful start caches the acting user", func() {
		flow, err := s.workflow.Start(s.ctx, s.sess, 7)
		s.Require().NoError(err)
		s.Equal(usecase.StateDatesSelected, flow.State)
		s.Equal(int64(42), flow.UserID)
	})
}

func (s *WorkflowTestSuite) TestConfirmDates() {
	s.Run("valid dates produce the inclusive quote", func() {
		flow := s.quotedFlow()
		s.Equal(usecase.StateQuoted, flow.State)
		s.Require().NotNil(flow.Quote)
		s.Equal(3, flow.Quote.Nights)
		s.Equal(float64(300), flow.Quote.Total)
		s.Equal(2, flow.Quote.Guests)
	})

	s.Run("missing dates raise a transient banner and keep the state", func() {
		flow, err := s.workflow.Start(s.ctx, s.sess, 7)
		s.Require().NoError(err)

		flow, err = s.workflow.ConfirmDates(s.ctx, flow.ID, time.Time{}, time.Time{}, 2, 0)
		s.ErrorIs(err, errs.ErrInvalidStay)
		s.Equal(usecase.StateDatesSelected, flow.State)
		s.Require().NotNil(flow.Notice)
		s.Contains(flow.Notice.Message, "check-in and check-out")
	})

	s.Run("the banner clears itself after the display window", func() {
		flow, err := s.workflow.Start(s.ctx, s.sess, 7)
		s.Require().NoError(err)
		flow, _ = s.workflow.ConfirmDates(s.ctx, flow.ID, time.Time{}, time.Time{}, 2, 0)
		s.Require().NotNil(flow.Notice)

		s.clk.Add(6 * time.Second)
		flow, err = s.workflow.Get(flow.ID)
		s.Require().NoError(err)
		s.Nil(flow.Notice)
	})

	s.Run("zero adults raise the occupancy banner", func() {
		flow, err := s.workflow.Start(s.ctx, s.sess, 7)
		s.Require().NoError(err)

		flow, err = s.workflow.ConfirmDates(s.ctx, flow.ID,
			time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
			0, 0)
		s.ErrorIs(err, errs.ErrInvalidOccupancy)
		s.Require().NotNil(flow.Notice)
	})
}

func (s *WorkflowTestSuite) TestSubmit() {
	s.Run("submit without a quote is refused", func() {
		flow, err := s.workflow.Start(s.ctx, s.sess, 7)
		s.Require().NoError(err)

		_, err = s.workflow.Submit(s.ctx, s.sess, flow.ID)
		s.ErrorIs(err, errs.ErrQuoteRequired)
	})

	s.Run("priced booking moves into the payment branch", func() {
		flow := s.quotedFlow()
		flow, err := s.workflow.Submit(s.ctx, s.sess, flow.ID)
		s.Require().NoError(err)

		s.Equal(usecase.StatePaymentPending, flow.State)
		s.Equal(int64(11), flow.BookingID)
		s.Equal("CONF-7781", flow.ConfirmationCode)
		s.Empty(s.sched.Pending())

		s.Require().Len(s.bookings.createReqs, 1)
		s.Equal("2024-06-01", s.bookings.createReqs[0].CheckInDate)
		s.Equal("2024-06-03", s.bookings.createReqs[0].CheckOutDate)
	})

	s.Run("zero total skips payment and schedules the return", func() {
		s.rooms.roomByID = room.Room{ID: 7, Type: "Deluxe King"}
		flow := s.quotedFlow()

		flow, err := s.workflow.Submit(s.ctx, s.sess, flow.ID)
		s.Require().NoError(err)
		s.Equal(usecase.StateBooked, flow.State)

		pending := s.sched.Pending()
		s.Require().Len(pending, 1)
		s.Equal(10*time.Second, pending[0].Delay)

		s.sched.FireAll()
		flow, err = s.workflow.Get(flow.ID)
		s.Require().NoError(err)
		s.Equal("/rooms", flow.RedirectTo)
	})

	s.Run("gateway failure returns to quoted with a banner", func() {
		s.bookings.createErr = gateway.NewError(gateway.KindUnavailable, "", nil)
		flow := s.quotedFlow()

		flow, err := s.workflow.Submit(s.ctx, s.sess, flow.ID)
		s.Error(err)
		s.Equal(usecase.StateQuoted, flow.State)
		s.Require().NotNil(flow.Notice)
	})
}

func (s *WorkflowTestSuite) TestCapturePayment() {
	s.Run("invalid form surfaces field errors without charging", func() {
		flow := s.quotedFlow()
		flow, err := s.workflow.Submit(s.ctx, s.sess, flow.ID)
		s.Require().NoError(err)

		form := s.validForm()
		form.CVC = "12"
		_, err = s.workflow.CapturePayment(s.ctx, s.sess, flow.ID, form)

		var fieldErrs *usecase.PaymentFieldErrors
		s.Require().ErrorAs(err, &fieldErrs)
		s.Contains(fieldErrs.Fields, "cvc")
		s.Empty(s.payments.captured)
	})

	s.Run("successful capture settles and schedules the return", func() {
		flow := s.quotedFlow()
		flow, err := s.workflow.Submit(s.ctx, s.sess, flow.ID)
		s.Require().NoError(err)

		flow, err = s.workflow.CapturePayment(s.ctx, s.sess, flow.ID, s.validForm())
		s.Require().NoError(err)
		s.Equal(usecase.StatePaymentSettled, flow.State)
		s.Equal([]float64{300}, s.payments.captured)
		s.Len(s.sched.Pending(), 1)
	})

	s.Run("declined payment keeps the flow alive for a retry", func() {
		s.payments.result = gateway.PaymentResult{Status: "FAILED"}
		flow := s.quotedFlow()
		flow, err := s.workflow.Submit(s.ctx, s.sess, flow.ID)
		s.Require().NoError(err)

		flow, err = s.workflow.CapturePayment(s.ctx, s.sess, flow.ID, s.validForm())
		s.ErrorIs(err, errs.ErrPaymentDeclined)
		s.Equal(usecase.StatePaymentFailed, flow.State)
		s.NotNil(flow.Notice)

		s.payments.result = gateway.PaymentResult{Status: "SUCCESS"}
		flow, err = s.workflow.CapturePayment(s.ctx, s.sess, flow.ID, s.validForm())
		s.Require().NoError(err)
		s.Equal(usecase.StatePaymentSettled, flow.State)
	})
}

func (s *WorkflowTestSuite) TestNavigationCancellation() {
	settle := func() usecase.Flow {
		flow := s.quotedFlow()
		flow, err := s.workflow.Submit(s.ctx, s.sess, flow.ID)
		s.Require().NoError(err)
		flow, err = s.workflow.CapturePayment(s.ctx, s.sess, flow.ID, s.validForm())
		s.Require().NoError(err)
		return flow
	}

	s.Run("a superseding start cancels the pending navigation", func() {
		settle()
		s.Require().Len(s.sched.Pending(), 1)

		_, err := s.workflow.Start(s.ctx, s.sess, 7)
		s.Require().NoError(err)
		s.Empty(s.sched.Pending())
	})

	s.Run("teardown cancels the navigation and drops the flow", func() {
		flow := settle()
		s.Require().Len(s.sched.Pending(), 1)

		s.workflow.Teardown(flow.ID)
		s.Empty(s.sched.Pending())

		_, err := s.workflow.Get(flow.ID)
		s.ErrorIs(err, errs.ErrFlowNotFound)
	})

	s.Run("another user's start leaves the navigation pending", func() {
		settle()
		s.Require().Len(s.sched.Pending(), 1)

		s.users.profile = &gateway.UserDTO{ID: 99}
		_, err := s.workflow.Start(s.ctx, session.New("other-token", session.RoleUser), 7)
		s.Require().NoError(err)
		s.Len(s.sched.Pending(), 1)
	})
}
