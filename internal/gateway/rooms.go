package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/venkatbala210/hotel-management-system/internal/domain/room"
)

// AllRooms lists the full inventory. The upstream may restrict this to
// privileged sessions; unauthenticated calls can legitimately fail.
func (c *Client) AllRooms(ctx context.Context, token string) ([]room.Room, error) {
	env, err := c.get(ctx, "/rooms/all", token)
	if err != nil {
		return nil, err
	}
	return toRooms(env.RoomList), nil
}

// AvailableRooms lists rooms currently free for any date range.
func (c *Client) AvailableRooms(ctx context.Context) ([]room.Room, error) {
	env, err := c.get(ctx, "/rooms/all-available-rooms", "")
	if err != nil {
		return nil, err
	}
	return toRooms(env.RoomList), nil
}

// AvailableRoomsByDateAndType searches availability for a concrete stay.
func (c *Client) AvailableRoomsByDateAndType(ctx context.Context, checkIn, checkOut, roomType string) ([]room.Room, error) {
	q := url.Values{}
	q.Set("checkInDate", checkIn)
	q.Set("checkOutDate", checkOut)
	q.Set("roomType", roomType)
	env, err := c.get(ctx, "/rooms/available-rooms-by-date-and-type?"+q.Encode(), "")
	if err != nil {
		return nil, err
	}
	return toRooms(env.RoomList), nil
}

func (c *Client) RoomByID(ctx context.Context, id int64) (room.Room, []BookingDTO, error) {
	env, err := c.get(ctx, fmt.Sprintf("/rooms/room-by-id/%d", id), "")
	if err != nil {
		return room.Room{}, nil, err
	}
	if env.Room == nil {
		return room.Room{}, nil, NewError(KindNotFound, "Room not found", nil)
	}
	return toRoom(*env.Room), env.Room.Bookings, nil
}

func (c *Client) RoomTypes(ctx context.Context) ([]string, error) {
	env, err := c.get(ctx, "/rooms/types", "")
	if err != nil {
		return nil, err
	}
	return env.RoomTypes, nil
}

func toRooms(dtos []RoomDTO) []room.Room {
	rooms := make([]room.Room, 0, len(dtos))
	for _, dto := range dtos {
		rooms = append(rooms, toRoom(dto))
	}
	return rooms
}

func toRoom(dto RoomDTO) room.Room {
	return room.Room{
		ID:          dto.ID,
		Type:        dto.RoomType,
		Price:       dto.RoomPrice,
		Description: dto.Description,
		PhotoURL:    dto.PhotoURL,
	}
}
