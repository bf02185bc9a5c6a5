package request

import "time"

const dateLayout = "2006-01-02"

type StartFlowRequest struct {
	RoomID int64 `json:"roomId" binding:"required"`
}

// ConfirmDatesRequest carries the date picker's raw output. Dates travel as
// plain calendar strings; parsing is lenient here because missing or garbled
// dates must reach the workflow, which answers with the banner the screen
// shows instead of a bare 400.
type ConfirmDatesRequest struct {
	CheckInDate   string `json:"checkInDate"`
	CheckOutDate  string `json:"checkOutDate"`
	NumOfAdults   int    `json:"numOfAdults"`
	NumOfChildren int    `json:"numOfChildren"`
}

func (r ConfirmDatesRequest) CheckIn() time.Time {
	return parseDate(r.CheckInDate)
}

func (r ConfirmDatesRequest) CheckOut() time.Time {
	return parseDate(r.CheckOutDate)
}

func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
