package request

// SearchRoomsRequest binds the search bar's query string. The handler
// requires all three fields; a search missing any of them raises the
// auto-dismiss validation banner.
type SearchRoomsRequest struct {
	CheckInDate  string `form:"checkInDate"`
	CheckOutDate string `form:"checkOutDate"`
	RoomType     string `form:"roomType"`
}
