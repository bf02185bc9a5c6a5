//go:build unit

package usecase_test

import (
	"context"

	"github.com/venkatbala210/hotel-management-system/internal/domain/room"
	"github.com/venkatbala210/hotel-management-system/internal/gateway"
)

// Hand-rolled fakes for the gateway ports. Each call records itself so tests
// can assert on the fallback order.

type fakeRoomGateway struct {
	calls []string

	all       []room.Room
	allErr    error
	avail     []room.Room
	availErr  error
	byDate    []room.Room
	byDateErr error
	types     []string
	typesErr  error

	roomByID     room.Room
	roomBookings []gateway.BookingDTO
	roomErr      error
}

func (f *fakeRoomGateway) AllRooms(_ context.Context, _ string) ([]room.Room, error) {
	f.calls = append(f.calls, "AllRooms")
	return f.all, f.allErr
}

func (f *fakeRoomGateway) AvailableRooms(_ context.Context) ([]room.Room, error) {
	f.calls = append(f.calls, "AvailableRooms")
	return f.avail, f.availErr
}

func (f *fakeRoomGateway) AvailableRoomsByDateAndType(_ context.Context, _, _, _ string) ([]room.Room, error) {
	f.calls = append(f.calls, "AvailableRoomsByDateAndType")
	return f.byDate, f.byDateErr
}

func (f *fakeRoomGateway) RoomByID(_ context.Context, _ int64) (room.Room, []gateway.BookingDTO, error) {
	f.calls = append(f.calls, "RoomByID")
	return f.roomByID, f.roomBookings, f.roomErr
}

func (f *fakeRoomGateway) RoomTypes(_ context.Context) ([]string, error) {
	f.calls = append(f.calls, "RoomTypes")
	return f.types, f.typesErr
}

type fakeBookingGateway struct {
	createResult gateway.BookingResult
	createErr    error
	createReqs   []gateway.BookingRequest

	byCode     *gateway.BookingDTO
	byCodeErr  error
	cancelErr  error
	cancelled  []int64
	history    []gateway.BookingDTO
	historyErr error
}

func (f *fakeBookingGateway) CreateBooking(_ context.Context, _ string, _, _ int64, req gateway.BookingRequest) (gateway.BookingResult, error) {
	f.createReqs = append(f.createReqs, req)
	return f.createResult, f.createErr
}

func (f *fakeBookingGateway) BookingByConfirmationCode(_ context.Context, _ string) (*gateway.BookingDTO, error) {
	return f.byCode, f.byCodeErr
}

func (f *fakeBookingGateway) CancelBooking(_ context.Context, _ string, bookingID int64) error {
	f.cancelled = append(f.cancelled, bookingID)
	return f.cancelErr
}

func (f *fakeBookingGateway) UserBookings(_ context.Context, _ string, _ int64) ([]gateway.BookingDTO, error) {
	return f.history, f.historyErr
}

type fakePaymentGateway struct {
	result     gateway.PaymentResult
	err        error
	captured   []float64
	settled    *gateway.PaymentDTO
	settledErr error
}

func (f *fakePaymentGateway) ProcessPayment(_ context.Context, _ string, _ int64, amount float64) (gateway.PaymentResult, error) {
	f.captured = append(f.captured, amount)
	return f.result, f.err
}

func (f *fakePaymentGateway) PaymentByBookingID(_ context.Context, _ string, _ int64) (*gateway.PaymentDTO, error) {
	return f.settled, f.settledErr
}

type fakeUserGateway struct {
	loginResult  gateway.LoginResult
	loginErr     error
	profile      *gateway.UserDTO
	profileErr   error
	dashboard    *gateway.DashboardDTO
	dashboardErr error
}

func (f *fakeUserGateway) Login(_ context.Context, _, _ string) (gateway.LoginResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeUserGateway) Profile(_ context.Context, _ string) (*gateway.UserDTO, error) {
	return f.profile, f.profileErr
}

func (f *fakeUserGateway) Dashboard(_ context.Context, _ string) (*gateway.DashboardDTO, error) {
	return f.dashboard, f.dashboardErr
}
