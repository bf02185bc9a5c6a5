package response

import (
	"github.com/venkatbala210/hotel-management-system/internal/gateway"

	"github.com/jinzhu/copier"
)

type ProfileResponse struct {
	ID          int64              `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	PhoneNumber string             `json:"phoneNumber"`
	Role        string             `json:"role"`
	Bookings    []*BookingResponse `json:"bookings"`
}

// FromUserDTO renders the profile screen's payload. Bookings is always a
// list; an empty history renders as an empty section, not a missing one.
func FromUserDTO(dto *gateway.UserDTO) *ProfileResponse {
	if dto == nil {
		return nil
	}
	var resp ProfileResponse
	_ = copier.Copy(&resp, dto)
	resp.Bookings = FromBookingDTOs(dto.Bookings)
	return &resp
}
