package booking

import (
	"errors"
	"time"
)

var ErrStayDatesRequired = errors.New("check-in and check-out dates are required")

// Stay is a selected check-in/check-out pair. Dates come from a date picker
// and may carry a time-of-day and zone; the gateway wants plain calendar
// dates, so Normalize strips them in the picker's local calendar rather than
// converting through UTC (a UTC shift can move the date by a day).
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return Stay{}, ErrStayDatesRequired
	}
	return Stay{CheckIn: checkIn, CheckOut: checkOut}, nil
}

func (s Stay) Normalize() Stay {
	return Stay{
		CheckIn:  dateOnly(s.CheckIn),
		CheckOut: dateOnly(s.CheckOut),
	}
}

// CheckInDate and CheckOutDate render the wire format the gateway expects.
func (s Stay) CheckInDate() string {
	return dateOnly(s.CheckIn).Format("2006-01-02")
}

func (s Stay) CheckOutDate() string {
	return dateOnly(s.CheckOut).Format("2006-01-02")
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
