package booking

import (
	"time"

	"github.com/ikkkkak/travel-listings/models"
)

// Nights returns the number of calendar nights between check-in and
// check-out. The clock and zone are stripped first, so partial days and
// DST-shortened days still count as full nights.
func Nights(checkIn, checkOut time.Time) int {
	return int(dateOf(checkOut).Sub(dateOf(checkIn)) / (24 * time.Hour))
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TotalPrice computes nights × nightly price. A non-positive night count is
// rejected, though Validate already excludes it via the range check.
func TotalPrice(checkIn, checkOut time.Time, pricePerNight float64) (float64, error) {
	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return 0, models.ErrInvalidRange
	}
	return float64(nights) * pricePerNight, nil
}
