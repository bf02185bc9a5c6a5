package room

// Room is the unit the browsing screens render. The gateway owns the record;
// this is a transient copy. ID 0 marks a fallback/demonstration entry that
// cannot be booked.
type Room struct {
	ID          int64
	Type        string
	Price       float64
	Description string
	PhotoURL    string
}

func (r Room) IsBookable() bool {
	return r.ID != 0
}

// TypesOf returns the distinct room types of a catalog in first-seen order.
func TypesOf(rooms []Room) []string {
	seen := make(map[string]struct{}, len(rooms))
	var types []string
	for _, r := range rooms {
		if _, ok := seen[r.Type]; ok {
			continue
		}
		seen[r.Type] = struct{}{}
		types = append(types, r.Type)
	}
	return types
}

// FilterByType keeps rooms of the given type; an empty type keeps everything.
func FilterByType(rooms []Room, roomType string) []Room {
	if roomType == "" {
		return rooms
	}
	var out []Room
	for _, r := range rooms {
		if r.Type == roomType {
			out = append(out, r)
		}
	}
	return out
}
