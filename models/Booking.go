package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
	BookingStatusCompleted BookingStatus = "completed"
)

// ActiveStatuses are the statuses that block other reservations on the same
// listing. Canceled and completed bookings free their dates.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

type Booking struct {
	ID              string        `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ListingID       string        `json:"listingID" gorm:"not null;index"`
	GuestID         string        `json:"guestID" gorm:"not null;index"`
	CheckIn         time.Time     `json:"checkIn" gorm:"not null;index:idx_booking_dates"`
	CheckOut        time.Time     `json:"checkOut" gorm:"not null;index:idx_booking_dates;check:check_out > check_in"`
	NumGuests       int           `json:"numGuests" gorm:"not null;check:num_guests >= 1"`
	TotalPrice      float64       `json:"totalPrice" gorm:"not null;check:total_price > 0"`
	Status          BookingStatus `json:"status" gorm:"type:varchar(20);default:pending;index"`
	SpecialRequests string        `json:"specialRequests"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`

	Listing *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
	Guest   *User    `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	return nil
}

// IsActive reports whether the booking still blocks its date range.
func (b *Booking) IsActive() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}
