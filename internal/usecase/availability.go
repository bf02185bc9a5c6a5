package usecase

import (
	"context"
	"log/slog"

	"github.com/venkatbala210/hotel-management-system/internal/domain/booking"
	"github.com/venkatbala210/hotel-management-system/internal/domain/room"
	"github.com/venkatbala210/hotel-management-system/internal/gateway"
	"github.com/venkatbala210/hotel-management-system/internal/pkg/session"
)

// AvailabilityQueries backs the room browsing and search screens. Nothing
// here returns an error to the caller: fetch failures step down the strategy
// chain and bottom out at the fixed demonstration catalog, so the room list
// is never empty and never fatal.
type AvailabilityQueries interface {
	Browse(ctx context.Context, sess *session.Session, roomType string) []room.Room
	Search(ctx context.Context, sess *session.Session, stay booking.Stay, roomType string) []room.Room
	RoomTypes(ctx context.Context) []string
	RoomDetails(ctx context.Context, id int64) (room.Room, []gateway.BookingDTO, error)
}

type availabilityQueriesImpl struct {
	rooms  RoomGateway
	logger *slog.Logger
}

func NewAvailabilityQueries(rooms RoomGateway, logger *slog.Logger) AvailabilityQueries {
	return &availabilityQueriesImpl{rooms: rooms, logger: logger}
}

// roomSource is one strategy in the fallback chain: a result, or a failure
// the combinator treats the same as an empty result.
type roomSource func(ctx context.Context) ([]room.Room, error)

// resolveRooms tries each source in order and returns the first non-empty
// success; when every tier fails or comes back empty, the fixed catalog
// stands in.
func (q *availabilityQueriesImpl) resolveRooms(ctx context.Context, sources ...roomSource) []room.Room {
	for _, src := range sources {
		rooms, err := src(ctx)
		if err != nil {
			q.logger.Warn("room source failed, trying next", "error", err)
			continue
		}
		if len(rooms) > 0 {
			return rooms
		}
	}
	q.logger.Warn("no rooms from any source, using fallback catalog")
	return room.FallbackCatalog()
}

func (q *availabilityQueriesImpl) Browse(ctx context.Context, sess *session.Session, roomType string) []room.Room {
	rooms := q.resolveRooms(ctx,
		func(ctx context.Context) ([]room.Room, error) {
			return q.rooms.AvailableRooms(ctx)
		},
		func(ctx context.Context) ([]room.Room, error) {
			// Full listing may need a privileged session; failing is fine.
			return q.rooms.AllRooms(ctx, sess.Token())
		},
	)
	return room.FilterByType(rooms, roomType)
}

func (q *availabilityQueriesImpl) Search(ctx context.Context, sess *session.Session, stay booking.Stay, roomType string) []room.Room {
	stay = stay.Normalize()
	return q.resolveRooms(ctx,
		func(ctx context.Context) ([]room.Room, error) {
			return q.rooms.AvailableRoomsByDateAndType(ctx, stay.CheckInDate(), stay.CheckOutDate(), roomType)
		},
		func(ctx context.Context) ([]room.Room, error) {
			return q.rooms.AllRooms(ctx, sess.Token())
		},
	)
}

// RoomTypes follows the same degrade-never-fail policy as the listings.
func (q *availabilityQueriesImpl) RoomTypes(ctx context.Context) []string {
	types, err := q.rooms.RoomTypes(ctx)
	if err != nil {
		q.logger.Warn("room types fetch failed, using fallback types", "error", err)
		return room.FallbackRoomTypes()
	}
	if len(types) == 0 {
		return room.FallbackRoomTypes()
	}
	return types
}

// RoomDetails is the one availability call that does surface errors: the
// details screen needs to distinguish "room not found" from a dead gateway.
func (q *availabilityQueriesImpl) RoomDetails(ctx context.Context, id int64) (room.Room, []gateway.BookingDTO, error) {
	return q.rooms.RoomByID(ctx, id)
}
