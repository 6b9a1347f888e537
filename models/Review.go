package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ListingID string    `json:"listingID" gorm:"not null;uniqueIndex:idx_review_listing_author"`
	AuthorID  string    `json:"authorID" gorm:"not null;uniqueIndex:idx_review_listing_author"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string    `json:"comment" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Listing *Listing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
	Author  *User    `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
