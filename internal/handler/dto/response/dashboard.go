package response

import (
	"github.com/venkatbala210/hotel-management-system/internal/usecase"

	"github.com/jinzhu/copier"
)

type DashboardResponse struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalAdmins       int64 `json:"totalAdmins"`
	TotalRegularUsers int64 `json:"totalRegularUsers"`

	TotalBookings     int64 `json:"totalBookings"`
	ConfirmedBookings int64 `json:"confirmedBookings"`
	CancelledBookings int64 `json:"cancelledBookings"`

	TotalRooms     int64   `json:"totalRooms"`
	AvailableRooms int64   `json:"availableRooms"`
	BookedRooms    int64   `json:"bookedRooms"`
	OccupancyRate  float64 `json:"occupancyRate"`

	TotalRevenue           float64 `json:"totalRevenue"`
	SuccessfulPayments     float64 `json:"successfulPayments"`
	FailedPayments         float64 `json:"failedPayments"`
	TotalPayments          int64   `json:"totalPayments"`
	SuccessfulPaymentCount int64   `json:"successfulPaymentCount"`
	FailedPaymentCount     int64   `json:"failedPaymentCount"`

	AllUsers    []*ProfileResponse `json:"allUsers,omitempty"`
	AllBookings []*BookingResponse `json:"allBookings,omitempty"`
	AllRooms    []*RoomResponse    `json:"allRooms,omitempty"`
	AllPayments []*PaymentResponse `json:"allPayments,omitempty"`
}

func FromDashboardView(view *usecase.DashboardView) *DashboardResponse {
	if view == nil {
		return nil
	}
	var resp DashboardResponse
	_ = copier.Copy(&resp, view)

	if len(view.AllUsers) > 0 {
		resp.AllUsers = make([]*ProfileResponse, len(view.AllUsers))
		for i := range view.AllUsers {
			resp.AllUsers[i] = FromUserDTO(&view.AllUsers[i])
		}
	}
	if len(view.AllBookings) > 0 {
		resp.AllBookings = FromBookingDTOs(view.AllBookings)
	}
	if len(view.AllRooms) > 0 {
		resp.AllRooms = make([]*RoomResponse, len(view.AllRooms))
		for i := range view.AllRooms {
			resp.AllRooms[i] = fromRoomDTO(&view.AllRooms[i])
		}
	}
	return &resp
}
