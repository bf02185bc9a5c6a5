//go:build unit

package room_test

import (
	"testing"

	"github.com/venkatbala210/hotel-management-system/internal/domain/room"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRoom(t *testing.T) {
	t.Run("only persisted rooms are bookable", func(t *testing.T) {
		assert.True(t, room.Room{ID: 7}.IsBookable())
		assert.False(t, room.Room{}.IsBookable())
	})

	t.Run("types are distinct in first seen order", func(t *testing.T) {
		rooms := []room.Room{
			{Type: "Deluxe"}, {Type: "Suite"}, {Type: "Deluxe"}, {Type: "Standard"},
		}
		if diff := cmp.Diff([]string{"Deluxe", "Suite", "Standard"}, room.TypesOf(rooms)); diff != "" {
			t.Errorf("types mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("filter by type keeps everything on empty type", func(t *testing.T) {
		rooms := []room.Room{{ID: 1, Type: "Deluxe"}, {ID: 2, Type: "Suite"}}
		assert.Len(t, room.FilterByType(rooms, ""), 2)
		filtered := room.FilterByType(rooms, "Suite")
		assert.Len(t, filtered, 1)
		assert.Equal(t, int64(2), filtered[0].ID)
	})
}

func TestFallbackCatalog(t *testing.T) {
	catalog := room.FallbackCatalog()
	assert.Len(t, catalog, 14)

	for _, r := range catalog {
		assert.False(t, r.IsBookable())
		assert.NotEmpty(t, r.Type)
		assert.Greater(t, r.Price, float64(0))
	}

	// Callers get their own copy; mutation must not leak into the catalog.
	catalog[0].Type = "mutated"
	assert.NotEqual(t, "mutated", room.FallbackCatalog()[0].Type)

	assert.Len(t, room.FallbackRoomTypes(), 14)
}
