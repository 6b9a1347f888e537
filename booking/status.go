package booking

import (
	"time"

	"github.com/ikkkkak/travel-listings/models"
)

// CanTransition checks a booking status change. Pending may be confirmed or
// canceled; confirmed may be canceled, or completed once the check-out date
// has elapsed relative to now. Canceled and completed are terminal.
func CanTransition(b *models.Booking, to models.BookingStatus, now time.Time) error {
	switch b.Status {
	case models.BookingStatusPending:
		if to == models.BookingStatusConfirmed || to == models.BookingStatusCanceled {
			return nil
		}
	case models.BookingStatusConfirmed:
		if to == models.BookingStatusCanceled {
			return nil
		}
		if to == models.BookingStatusCompleted && !now.Before(b.CheckOut) {
			return nil
		}
	}
	return models.ErrInvalidStatusTransition
}

// Transition applies the status change after CanTransition allows it.
func Transition(b *models.Booking, to models.BookingStatus, now time.Time) error {
	if err := CanTransition(b, to, now); err != nil {
		return err
	}
	b.Status = to
	return nil
}
