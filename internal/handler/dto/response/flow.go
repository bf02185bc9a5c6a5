package response

import (
	"time"

	"github.com/venkatbala210/hotel-management-system/internal/usecase"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	Nights      int     `json:"nights"`
	TotalPrice  float64 `json:"totalPrice"`
	TotalGuests int     `json:"totalGuests"`
}

type NoticeResponse struct {
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// FlowResponse is the whole booking-screen state in one payload: the client
// renders it and nothing else.
type FlowResponse struct {
	FlowID           uuid.UUID       `json:"flowId"`
	State            string          `json:"state"`
	Room             *RoomResponse   `json:"room"`
	CheckInDate      string          `json:"checkInDate,omitempty"`
	CheckOutDate     string          `json:"checkOutDate,omitempty"`
	NumOfAdults      int             `json:"numOfAdults,omitempty"`
	NumOfChildren    int             `json:"numOfChildren,omitempty"`
	Quote            *QuoteResponse  `json:"quote,omitempty"`
	BookingID        int64           `json:"bookingId,omitempty"`
	ConfirmationCode string          `json:"bookingConfirmationCode,omitempty"`
	Notice           *NoticeResponse `json:"notice,omitempty"`
	RedirectTo       string          `json:"redirectTo,omitempty"`
}

func FromFlow(flow usecase.Flow) *FlowResponse {
	resp := &FlowResponse{
		FlowID:           flow.ID,
		State:            string(flow.State),
		Room:             FromRoom(flow.Room),
		NumOfAdults:      flow.Adults,
		NumOfChildren:    flow.Children,
		BookingID:        flow.BookingID,
		ConfirmationCode: flow.ConfirmationCode,
		RedirectTo:       flow.RedirectTo,
	}

	if !flow.Stay.CheckIn.IsZero() {
		resp.CheckInDate = flow.Stay.CheckInDate()
		resp.CheckOutDate = flow.Stay.CheckOutDate()
	}
	if flow.Quote != nil {
		resp.Quote = &QuoteResponse{
			Nights:      flow.Quote.Nights,
			TotalPrice:  flow.Quote.Total,
			TotalGuests: flow.Quote.Guests,
		}
	}
	if flow.Notice != nil {
		resp.Notice = &NoticeResponse{
			Message:   flow.Notice.Message,
			ExpiresAt: flow.Notice.ExpiresAt,
		}
	}
	return resp
}
