package booking

import (
	"errors"
	"math"
	"time"
)

var (
	ErrAdultsRequired = errors.New("at least one adult is required")
	ErrNegativeGuests = errors.New("guest counts cannot be negative")
)

// Quote is the derived nights/total/guests summary shown before a booking is
// submitted. It is recomputed whenever the inputs change and never persisted.
type Quote struct {
	Nights int
	Total  float64
	Guests int
}

const oneDay = 24 * time.Hour

// ComputeQuote derives a Quote from the selected stay and occupancy.
//
// Nights counts both boundary days: round(abs(out-in)/1d) + 1. A one-night
// stay (checkOut = checkIn + 1 day) therefore quotes 2 nights. That is the
// published pricing policy, not an off-by-one.
//
// A missing or non-numeric nightly price yields total 0 rather than NaN; the
// fallback catalog has no bookable price, and the screens render $0 as
// "price unavailable".
func ComputeQuote(stay Stay, nightlyPrice float64, adults, children int) (Quote, error) {
	if stay.CheckIn.IsZero() || stay.CheckOut.IsZero() {
		return Quote{}, ErrStayDatesRequired
	}
	if adults < 1 {
		return Quote{}, ErrAdultsRequired
	}
	if children < 0 {
		return Quote{}, ErrNegativeGuests
	}

	span := stay.CheckOut.Sub(stay.CheckIn)
	if span < 0 {
		span = -span
	}
	nights := int(math.Round(float64(span)/float64(oneDay))) + 1

	total := float64(nights) * nightlyPrice
	if math.IsNaN(total) || nightlyPrice == 0 {
		total = 0
	}

	return Quote{
		Nights: nights,
		Total:  total,
		Guests: adults + children,
	}, nil
}
