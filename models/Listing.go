package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Listing struct {
	ID            string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	HostID        string         `json:"hostID" gorm:"not null;index"`
	Title         string         `json:"title" gorm:"not null"`
	Description   string         `json:"description" gorm:"type:text"`
	Location      string         `json:"location" gorm:"index"`
	PricePerNight float64        `json:"pricePerNight" gorm:"not null;check:price_per_night > 0"`
	Bedrooms      int            `json:"bedrooms" gorm:"default:1;check:bedrooms >= 0"`
	Bathrooms     int            `json:"bathrooms" gorm:"default:1;check:bathrooms >= 0"`
	MaxGuests     int            `json:"maxGuests" gorm:"default:1;check:max_guests >= 1"`
	Amenities     datatypes.JSON `json:"amenities"`
	IsAvailable   bool           `json:"isAvailable" gorm:"default:true;index"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`

	Host     *User     `json:"host,omitempty" gorm:"foreignKey:HostID"`
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
	Reviews  []Review  `json:"reviews,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}

func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// SetAmenities stores the amenity set as a JSON array.
func (l *Listing) SetAmenities(amenities []string) error {
	raw, err := json.Marshal(amenities)
	if err != nil {
		return err
	}
	l.Amenities = datatypes.JSON(raw)
	return nil
}

// AmenityList parses the stored JSON array back into a slice. An empty or
// malformed column yields an empty slice rather than an error.
func (l *Listing) AmenityList() []string {
	amenities := []string{}
	if len(l.Amenities) > 0 {
		_ = json.Unmarshal(l.Amenities, &amenities)
	}
	return amenities
}
