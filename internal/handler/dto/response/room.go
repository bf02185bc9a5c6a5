package response

import (
	"github.com/venkatbala210/hotel-management-system/internal/domain/room"
	"github.com/venkatbala210/hotel-management-system/internal/gateway"
)

type RoomResponse struct {
	ID              int64   `json:"id"`
	RoomType        string  `json:"roomType"`
	RoomPrice       float64 `json:"roomPrice"`
	RoomDescription string  `json:"roomDescription"`
	RoomPhotoUrl    string  `json:"roomPhotoUrl"`
	Bookable        bool    `json:"bookable"`
}

type RoomDetailsResponse struct {
	Room     *RoomResponse      `json:"room"`
	Bookings []*BookingResponse `json:"bookings"`
}

type RoomTypesResponse struct {
	RoomTypes []string `json:"roomTypes"`
}

func FromRoom(rm room.Room) *RoomResponse {
	return &RoomResponse{
		ID:              rm.ID,
		RoomType:        rm.Type,
		RoomPrice:       rm.Price,
		RoomDescription: rm.Description,
		RoomPhotoUrl:    rm.PhotoURL,
		Bookable:        rm.IsBookable(),
	}
}

func FromRooms(rooms []room.Room) []*RoomResponse {
	out := make([]*RoomResponse, len(rooms))
	for i, rm := range rooms {
		out[i] = FromRoom(rm)
	}
	return out
}

func fromRoomDTO(dto *gateway.RoomDTO) *RoomResponse {
	if dto == nil {
		return nil
	}
	return &RoomResponse{
		ID:              dto.ID,
		RoomType:        dto.RoomType,
		RoomPrice:       dto.RoomPrice,
		RoomDescription: dto.Description,
		RoomPhotoUrl:    dto.PhotoURL,
		Bookable:        dto.ID != 0,
	}
}
