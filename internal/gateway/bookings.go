package gateway

import (
	"context"
	"fmt"
	"net/url"
)

// CreateBooking asks the gateway to persist a booking for the given room and
// user. On success the gateway answers with a confirmation code and the new
// booking's id; both are needed by the payment branch of the workflow.
func (c *Client) CreateBooking(ctx context.Context, token string, roomID, userID int64, req BookingRequest) (BookingResult, error) {
	env, err := c.post(ctx, fmt.Sprintf("/bookings/book-room/%d/%d", roomID, userID), token, req)
	if err != nil {
		return BookingResult{}, err
	}

	result := BookingResult{ConfirmationCode: env.BookingConfirmationCode}
	if env.Booking != nil {
		result.BookingID = env.Booking.ID
	}
	return result, nil
}

// BookingByConfirmationCode is the public lookup; no session required.
func (c *Client) BookingByConfirmationCode(ctx context.Context, code string) (*BookingDTO, error) {
	env, err := c.get(ctx, "/bookings/get-by-confirmation-code/"+url.PathEscape(code), "")
	if err != nil {
		return nil, err
	}
	if env.Booking == nil {
		return nil, NewError(KindNotFound, "Booking not found", nil)
	}
	return env.Booking, nil
}

func (c *Client) CancelBooking(ctx context.Context, token string, bookingID int64) error {
	_, err := c.post(ctx, fmt.Sprintf("/bookings/cancel/%d", bookingID), token, nil)
	return err
}

// UserBookings returns the booking history rendered on the profile screen.
func (c *Client) UserBookings(ctx context.Context, token string, userID int64) ([]BookingDTO, error) {
	env, err := c.get(ctx, fmt.Sprintf("/users/get-user-bookings/%d", userID), token)
	if err != nil {
		return nil, err
	}
	if env.User != nil {
		return env.User.Bookings, nil
	}
	return env.BookingList, nil
}
