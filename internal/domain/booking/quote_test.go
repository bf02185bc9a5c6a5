//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/venkatbala210/hotel-management-system/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestComputeQuote(t *testing.T) {
	t.Run("counts both boundary days", func(t *testing.T) {
		cases := []struct {
			name     string
			checkIn  string
			checkOut string
			nights   int
		}{
			{"same day stay is one night", "2024-06-01", "2024-06-01", 1},
			{"one calendar night quotes two", "2024-06-01", "2024-06-02", 2},
			{"two calendar nights quote three", "2024-06-01", "2024-06-03", 3},
			{"week long stay", "2024-06-01", "2024-06-08", 8},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				stay, err := booking.NewStay(day(tc.checkIn), day(tc.checkOut))
				require.NoError(t, err)

				quote, err := booking.ComputeQuote(stay, 100, 2, 0)
				require.NoError(t, err)
				assert.Equal(t, tc.nights, quote.Nights)
				assert.Equal(t, float64(tc.nights)*100, quote.Total)
			})
		}
	})

	t.Run("reversed dates quote the same stay", func(t *testing.T) {
		stay := booking.Stay{CheckIn: day("2024-06-03"), CheckOut: day("2024-06-01")}
		quote, err := booking.ComputeQuote(stay, 100, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, quote.Nights)
	})

	t.Run("sums adults and children into guests", func(t *testing.T) {
		stay := booking.Stay{CheckIn: day("2024-06-01"), CheckOut: day("2024-06-03")}
		quote, err := booking.ComputeQuote(stay, 150, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, 3, quote.Guests)
		assert.Equal(t, float64(450), quote.Total)
	})

	t.Run("unpriced room totals zero", func(t *testing.T) {
		stay := booking.Stay{CheckIn: day("2024-06-01"), CheckOut: day("2024-06-02")}
		quote, err := booking.ComputeQuote(stay, 0, 1, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, quote.Nights)
		assert.Equal(t, float64(0), quote.Total)
	})

	t.Run("rejects bad occupancy", func(t *testing.T) {
		stay := booking.Stay{CheckIn: day("2024-06-01"), CheckOut: day("2024-06-02")}

		_, err := booking.ComputeQuote(stay, 100, 0, 0)
		assert.ErrorIs(t, err, booking.ErrAdultsRequired)

		_, err = booking.ComputeQuote(stay, 100, 1, -1)
		assert.ErrorIs(t, err, booking.ErrNegativeGuests)
	})

	t.Run("rejects missing dates", func(t *testing.T) {
		_, err := booking.ComputeQuote(booking.Stay{}, 100, 1, 0)
		assert.ErrorIs(t, err, booking.ErrStayDatesRequired)
	})
}

func TestStay(t *testing.T) {
	t.Run("requires both dates", func(t *testing.T) {
		_, err := booking.NewStay(time.Time{}, day("2024-06-02"))
		assert.ErrorIs(t, err, booking.ErrStayDatesRequired)

		_, err = booking.NewStay(day("2024-06-01"), time.Time{})
		assert.ErrorIs(t, err, booking.ErrStayDatesRequired)
	})

	t.Run("normalize strips time of day in the local calendar", func(t *testing.T) {
		loc := time.FixedZone("UTC+9", 9*3600)
		// 23:30 local would move to the previous day if shifted through UTC
		checkIn := time.Date(2024, 6, 1, 23, 30, 0, 0, loc)
		stay := booking.Stay{CheckIn: checkIn, CheckOut: checkIn.Add(24 * time.Hour)}

		assert.Equal(t, "2024-06-01", stay.CheckInDate())
		assert.Equal(t, "2024-06-02", stay.CheckOutDate())

		normalized := stay.Normalize()
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, loc), normalized.CheckIn)
	})
}
