package usecase

import (
	"context"
	"log/slog"

	"github.com/venkatbala210/hotel-management-system/internal/gateway"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/errs"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/session"
)

// ProfileQueries backs the customer profile screen: identity plus booking
// history, and cancellation with a re-fetch afterwards.
type ProfileQueries interface {
	Profile(ctx context.Context, sess *session.Session) (*gateway.UserDTO, error)
	CancelBooking(ctx context.Context, sess *session.Session, bookingID int64) (*gateway.UserDTO, error)
}

type profileQueriesImpl struct {
	users    UserGateway
	bookings BookingGateway
	logger   *slog.Logger
}

func NewProfileQueries(users UserGateway, bookings BookingGateway, logger *slog.Logger) ProfileQueries {
	return &profileQueriesImpl{users: users, bookings: bookings, logger: logger}
}

func (p *profileQueriesImpl) Profile(ctx context.Context, sess *session.Session) (*gateway.UserDTO, error) {
	if !sess.IsAuthenticated() {
		return nil, errs.ErrAuthRequired
	}

	user, err := p.users.Profile(ctx, sess.Token())
	if err != nil {
		return nil, err
	}

	// History is a second call; an empty list is better than a dead page.
	history, err := p.bookings.UserBookings(ctx, sess.Token(), user.ID)
	if err != nil {
		p.logger.Warn("booking history fetch failed", "user_id", user.ID, "error", err)
		return user, nil
	}
	user.Bookings = history
	return user, nil
}

// CancelBooking cancels upstream and re-reads the profile; local state is
// never flipped on an assumed success.
func (p *profileQueriesImpl) CancelBooking(ctx context.Context, sess *session.Session, bookingID int64) (*gateway.UserDTO, error) {
	if !sess.IsAuthenticated() {
		return nil, errs.ErrAuthRequired
	}
	if err := p.bookings.CancelBooking(ctx, sess.Token(), bookingID); err != nil {
		return nil, err
	}
	return p.Profile(ctx, sess)
}
