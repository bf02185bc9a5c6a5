package usecase

import (
	"context"

	"github.com/venkatbala210/hotel-management-system/internal/domain/room"
	"github.com/venkatbala210/hotel-management-system/internal/gateway"
)

// Narrow views of the gateway client, one per screen group, so tests can
// substitute fakes without standing up HTTP.

type RoomGateway interface {
	AllRooms(ctx context.Context, token string) ([]room.Room, error)
	AvailableRooms(ctx context.Context) ([]room.Room, error)
	AvailableRoomsByDateAndType(ctx context.Context, checkIn, checkOut, roomType string) ([]room.Room, error)
	RoomByID(ctx context.Context, id int64) (room.Room, []gateway.BookingDTO, error)
	RoomTypes(ctx context.Context) ([]string, error)
}

type BookingGateway interface {
	CreateBooking(ctx context.Context, token string, roomID, userID int64, req gateway.BookingRequest) (gateway.BookingResult, error)
	BookingByConfirmationCode(ctx context.Context, code string) (*gateway.BookingDTO, error)
	CancelBooking(ctx context.Context, token string, bookingID int64) error
	UserBookings(ctx context.Context, token string, userID int64) ([]gateway.BookingDTO, error)
}

type PaymentGateway interface {
	ProcessPayment(ctx context.Context, token string, bookingID int64, amount float64) (gateway.PaymentResult, error)
	PaymentByBookingID(ctx context.Context, token string, bookingID int64) (*gateway.PaymentDTO, error)
}

type UserGateway interface {
	Login(ctx context.Context, email, password string) (gateway.LoginResult, error)
	Profile(ctx context.Context, token string) (*gateway.UserDTO, error)
	Dashboard(ctx context.Context, token string) (*gateway.DashboardDTO, error)
}
