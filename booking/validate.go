// Package booking holds the reservation consistency rules. Everything here is
// a pure function over supplied state: the caller fetches the listing and its
// existing bookings and owns persisting the result.
package booking

import (
	"time"

	"github.com/ikkkkak/travel-listings/models"
)

// Candidate is a proposed reservation before it has an identity or a status.
type Candidate struct {
	CheckIn   time.Time
	CheckOut  time.Time
	NumGuests int
}

// Validate decides whether a candidate reservation is admissible against the
// listing and its existing bookings. Checks short-circuit in a fixed order:
// date range, guest capacity, then overlap with active bookings. Bookings for
// other listings or in a non-active status are ignored.
func Validate(listing *models.Listing, c Candidate, existing []models.Booking) error {
	if !c.CheckIn.Before(c.CheckOut) {
		return models.ErrInvalidRange
	}
	if c.NumGuests < 1 || c.NumGuests > listing.MaxGuests {
		return models.ErrGuestCapacityExceeded
	}
	for i := range existing {
		b := &existing[i]
		if b.ListingID != listing.ID || !b.IsActive() {
			continue
		}
		if Overlaps(c.CheckIn, c.CheckOut, b.CheckIn, b.CheckOut) {
			return models.ErrDateOverlap
		}
	}
	return nil
}

// Overlaps reports whether two half-open intervals [aIn, aOut) and
// [bIn, bOut) intersect. Check-out day is exclusive, so back-to-back stays
// sharing a turnover day do not overlap.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}
