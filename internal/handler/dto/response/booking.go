package response

import (
	"github.com/venkatbala210/hotel-management-system/internal/gateway"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID               int64            `json:"id"`
	ConfirmationCode string           `json:"bookingConfirmationCode"`
	CheckInDate      string           `json:"checkInDate"`
	CheckOutDate     string           `json:"checkOutDate"`
	NumOfAdults      int              `json:"numOfAdults"`
	NumOfChildren    int              `json:"numOfChildren"`
	Status           string           `json:"status,omitempty"`
	Room             *RoomResponse    `json:"room,omitempty"`
	Payment          *PaymentResponse `json:"payment,omitempty"`
}

type PaymentResponse struct {
	ID          int64   `json:"id"`
	BookingID   int64   `json:"bookingId"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	PaymentDate string  `json:"paymentDate,omitempty"`
}

// FromBookingDTO copies the gateway shape field-for-field; only the nested
// room needs manual treatment because its wire names differ from its struct
// names.
func FromBookingDTO(dto *gateway.BookingDTO) *BookingResponse {
	if dto == nil {
		return nil
	}
	var resp BookingResponse
	_ = copier.Copy(&resp, dto)
	resp.Room = fromRoomDTO(dto.Room)
	return &resp
}

func FromBookingDTOs(dtos []gateway.BookingDTO) []*BookingResponse {
	out := make([]*BookingResponse, len(dtos))
	for i := range dtos {
		out[i] = FromBookingDTO(&dtos[i])
	}
	return out
}
