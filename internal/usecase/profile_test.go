//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/venkatbala210/hotel-management-system/internal/gateway"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/errs"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/session"
	"github.com/venkatbala210/hotel-management-system/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile(users *fakeUserGateway, bookings *fakeBookingGateway) usecase.ProfileQueries {
	return usecase.NewProfileQueries(users, bookings, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	sess := session.New("test-token", session.RoleUser)

	t.Run("anonymous access is refused", func(t *testing.T) {
		profile := newProfile(&fakeUserGateway{}, &fakeBookingGateway{})
		_, err := profile.Profile(ctx, session.Anonymous())
		assert.ErrorIs(t, err, errs.ErrAuthRequired)
	})

	t.Run("identity and history combine into one view", func(t *testing.T) {
		users := &fakeUserGateway{profile: &gateway.UserDTO{ID: 42, Name: "Guest"}}
		bookings := &fakeBookingGateway{history: []gateway.BookingDTO{{ID: 11}}}

		user, err := newProfile(users, bookings).Profile(ctx, sess)
		require.NoError(t, err)
		assert.Equal(t, "Guest", user.Name)
		assert.Len(t, user.Bookings, 1)
	})

	t.Run("a dead history call still renders the identity", func(t *testing.T) {
		users := &fakeUserGateway{profile: &gateway.UserDTO{ID: 42}}
		bookings := &fakeBookingGateway{historyErr: errUpstream}

		user, err := newProfile(users, bookings).Profile(ctx, sess)
		require.NoError(t, err)
		assert.Empty(t, user.Bookings)
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()
	sess := session.New("test-token", session.RoleUser)

	t.Run("cancels upstream then re-reads the profile", func(t *testing.T) {
		users := &fakeUserGateway{profile: &gateway.UserDTO{ID: 42}}
		bookings := &fakeBookingGateway{}

		_, err := newProfile(users, bookings).CancelBooking(ctx, sess, 11)
		require.NoError(t, err)
		assert.Equal(t, []int64{11}, bookings.cancelled)
	})

	t.Run("a failed cancel never touches the profile", func(t *testing.T) {
		bookings := &fakeBookingGateway{cancelErr: errUpstream}
		_, err := newProfile(&fakeUserGateway{}, bookings).CancelBooking(ctx, sess, 11)
		assert.Error(t, err)
	})
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	sess := session.New("test-token", session.RoleAdmin)

	t.Run("derives occupancy from the aggregates", func(t *testing.T) {
		users := &fakeUserGateway{dashboard: &gateway.DashboardDTO{TotalRooms: 20, BookedRooms: 5}}
		view, err := usecase.NewDashboardQueries(users).Dashboard(ctx, sess)
		require.NoError(t, err)
		assert.InDelta(t, 0.25, view.OccupancyRate, 1e-9)
	})

	t.Run("zero rooms means zero occupancy, not a division error", func(t *testing.T) {
		users := &fakeUserGateway{dashboard: &gateway.DashboardDTO{}}
		view, err := usecase.NewDashboardQueries(users).Dashboard(ctx, sess)
		require.NoError(t, err)
		assert.Zero(t, view.OccupancyRate)
	})

	t.Run("anonymous access is refused locally", func(t *testing.T) {
		_, err := usecase.NewDashboardQueries(&fakeUserGateway{}).Dashboard(ctx, session.Anonymous())
		assert.ErrorIs(t, err, errs.ErrAuthRequired)
	})
}
