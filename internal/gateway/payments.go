package gateway

import (
	"context"
	"fmt"
)

type paymentRequest struct {
	Amount float64 `json:"amount"`
}

// ProcessPayment sends amount and booking id to the gateway's mock payment
// endpoint. Anything other than a clean 200 is a declined payment; the
// caller reports it and never retries on its own.
func (c *Client) ProcessPayment(ctx context.Context, token string, bookingID int64, amount float64) (PaymentResult, error) {
	env, err := c.post(ctx, fmt.Sprintf("/payments/process/%d", bookingID), token, paymentRequest{Amount: amount})
	if err != nil {
		return PaymentResult{}, err
	}

	result := PaymentResult{Status: "SUCCESS", Amount: amount}
	if env.Payment != nil {
		result.Status = env.Payment.Status
		result.Amount = env.Payment.Amount
	}
	return result, nil
}

// PaymentByBookingID fetches the settled payment, if any, for a booking.
func (c *Client) PaymentByBookingID(ctx context.Context, token string, bookingID int64) (*PaymentDTO, error) {
	env, err := c.get(ctx, fmt.Sprintf("/payments/booking/%d", bookingID), token)
	if err != nil {
		return nil, err
	}
	return env.Payment, nil
}
