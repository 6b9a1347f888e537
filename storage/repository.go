// Package storage implements persistence for the travel-listing entities.
// The validation rules live in the booking and review packages; the
// repository supplies them with state and commits the results.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ikkkkak/travel-listings/booking"
	"github.com/ikkkkak/travel-listings/config"
	"github.com/ikkkkak/travel-listings/models"
	"github.com/ikkkkak/travel-listings/review"
)

type Repository struct {
	db    *gorm.DB
	cache *RatingCache

	deletePolicy     string
	allowHostBooking bool

	// sqlite has no SELECT ... FOR UPDATE; its writes serialize anyway.
	rowLocking bool
}

func NewRepository(db *gorm.DB, cfg config.Config, cache *RatingCache) *Repository {
	return &Repository{
		db:               db,
		cache:            cache,
		deletePolicy:     cfg.ListingDeletePolicy,
		allowHostBooking: cfg.AllowHostBooking,
		rowLocking:       db.Dialector.Name() == "postgres",
	}
}

// translate maps driver-level failures onto the repository's error kinds.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %v", models.ErrConstraintViolation, err)
	default:
		return err
	}
}

func (r *Repository) CreateUser(u *models.User) error {
	return translate(r.db.Create(u).Error)
}

func (r *Repository) GetUser(id string) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *Repository) CreateListing(l *models.Listing) error {
	return translate(r.db.Create(l).Error)
}

func (r *Repository) GetListing(id string) (*models.Listing, error) {
	var l models.Listing
	if err := r.db.First(&l, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &l, nil
}

func (r *Repository) ListListings() ([]models.Listing, error) {
	var listings []models.Listing
	err := r.db.Order("created_at DESC").Find(&listings).Error
	return listings, translate(err)
}

// ActiveBookingsFor returns the bookings that currently block dates on the
// listing, i.e. pending and confirmed ones.
func (r *Repository) ActiveBookingsFor(listingID string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.
		Where("listing_id = ? AND status IN ?", listingID, models.ActiveStatuses).
		Find(&bookings).Error
	return bookings, translate(err)
}

func (r *Repository) ReviewsFor(listingID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.
		Where("listing_id = ?", listingID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, translate(err)
}

// InsertBooking persists a booking as-is. Callers that have not already run
// the validator should use CreateBooking instead.
func (r *Repository) InsertBooking(b *models.Booking) error {
	return translate(r.db.Create(b).Error)
}

// InsertReview persists a review as-is; the unique (listing, author) index
// remains the final arbiter and surfaces as ErrConstraintViolation.
func (r *Repository) InsertReview(rv *models.Review) error {
	if err := translate(r.db.Create(rv).Error); err != nil {
		return err
	}
	r.cache.Invalidate(context.Background(), rv.ListingID)
	return nil
}

// CreateBooking validates and inserts in one transaction. The listing row is
// locked for the duration on postgres so that two concurrent requests cannot
// both pass the overlap check against a stale snapshot; bookings on other
// listings are unaffected.
func (r *Repository) CreateBooking(b *models.Booking) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		q := tx
		if r.rowLocking {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var listing models.Listing
		if err := q.First(&listing, "id = ?", b.ListingID).Error; err != nil {
			return translate(err)
		}

		if !r.allowHostBooking && b.GuestID == listing.HostID {
			return models.ErrHostBooking
		}

		var existing []models.Booking
		if err := tx.
			Where("listing_id = ? AND status IN ?", b.ListingID, models.ActiveStatuses).
			Find(&existing).Error; err != nil {
			return translate(err)
		}

		candidate := booking.Candidate{
			CheckIn:   b.CheckIn,
			CheckOut:  b.CheckOut,
			NumGuests: b.NumGuests,
		}
		if err := booking.Validate(&listing, candidate, existing); err != nil {
			return err
		}

		if b.TotalPrice == 0 {
			price, err := booking.TotalPrice(b.CheckIn, b.CheckOut, listing.PricePerNight)
			if err != nil {
				return err
			}
			b.TotalPrice = price
		}

		return translate(tx.Create(b).Error)
	})
}

// CreateReview runs the content checks and the uniqueness guard before
// inserting.
func (r *Repository) CreateReview(rv *models.Review) error {
	existing, err := r.ReviewsFor(rv.ListingID)
	if err != nil {
		return err
	}
	if err := review.Validate(rv, existing); err != nil {
		return err
	}
	return r.InsertReview(rv)
}

func (r *Repository) GetBooking(id string) (*models.Booking, error) {
	var b models.Booking
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

// UpdateBookingStatus applies a status transition through the state machine.
func (r *Repository) UpdateBookingStatus(id string, to models.BookingStatus, now time.Time) (*models.Booking, error) {
	var updated *models.Booking
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var b models.Booking
		if err := tx.First(&b, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		if err := booking.Transition(&b, to, now); err != nil {
			return err
		}
		if err := tx.Model(&b).Update("status", b.Status).Error; err != nil {
			return translate(err)
		}
		updated = &b
		return nil
	})
	return updated, err
}

// DeleteBooking removes a booking, permitted only while it is pending.
// Confirmed bookings are canceled via a status transition, never deleted.
func (r *Repository) DeleteBooking(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var b models.Booking
		if err := tx.First(&b, "id = ?", id).Error; err != nil {
			return translate(err)
		}
		if b.Status != models.BookingStatusPending {
			return models.ErrNotPending
		}
		return translate(tx.Delete(&b).Error)
	})
}

// DeleteListing applies the configured dependent policy: cascade removes the
// listing's bookings and reviews with it, restrict rejects the delete while
// dependents exist.
func (r *Repository) DeleteListing(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var listing models.Listing
		if err := tx.First(&listing, "id = ?", id).Error; err != nil {
			return translate(err)
		}

		var dependents int64
		if err := tx.Model(&models.Booking{}).Where("listing_id = ?", id).Count(&dependents).Error; err != nil {
			return translate(err)
		}
		var reviewCount int64
		if err := tx.Model(&models.Review{}).Where("listing_id = ?", id).Count(&reviewCount).Error; err != nil {
			return translate(err)
		}
		dependents += reviewCount

		if dependents > 0 && r.deletePolicy == config.DeletePolicyRestrict {
			return models.ErrHasDependents
		}

		if err := tx.Where("listing_id = ?", id).Delete(&models.Booking{}).Error; err != nil {
			return translate(err)
		}
		if err := tx.Where("listing_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return translate(err)
		}
		if err := tx.Delete(&listing).Error; err != nil {
			return translate(err)
		}
		r.cache.Invalidate(context.Background(), id)
		return nil
	})
}

// UpdateReview replaces a review's rating and comment after revalidating
// them. Authorship checks belong to the caller; identity is out of scope
// here.
func (r *Repository) UpdateReview(id string, rating int, comment string) (*models.Review, error) {
	if err := review.ValidateRating(rating); err != nil {
		return nil, err
	}
	if err := review.ValidateComment(comment); err != nil {
		return nil, err
	}

	var rv models.Review
	if err := r.db.First(&rv, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	rv.Rating = rating
	rv.Comment = comment
	if err := translate(r.db.Model(&rv).Updates(map[string]interface{}{
		"rating":  rating,
		"comment": comment,
	}).Error); err != nil {
		return nil, err
	}
	r.cache.Invalidate(context.Background(), rv.ListingID)
	return &rv, nil
}

func (r *Repository) DeleteReview(id string) error {
	var rv models.Review
	if err := r.db.First(&rv, "id = ?", id).Error; err != nil {
		return translate(err)
	}
	if err := translate(r.db.Delete(&rv).Error); err != nil {
		return err
	}
	r.cache.Invalidate(context.Background(), rv.ListingID)
	return nil
}

// DeleteAll clears one entity kind. Used by the seeder's clean mode, which
// calls it in dependency order.
func (r *Repository) DeleteAll(kind string) error {
	switch kind {
	case "bookings":
		return translate(r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Booking{}).Error)
	case "reviews":
		return translate(r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Review{}).Error)
	case "listings":
		return translate(r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.Listing{}).Error)
	default:
		return fmt.Errorf("unknown entity kind %q", kind)
	}
}

// DeleteSeededUsers removes the users the seeder created, keeping admins and
// any organically created accounts. The underscore is escaped because it is a
// single-character wildcard in LIKE patterns.
func (r *Repository) DeleteSeededUsers() error {
	return translate(r.db.
		Where(`email LIKE ? ESCAPE '\' AND role <> ?`, `user\_%`, "admin").
		Delete(&models.User{}).Error)
}

// AverageRating computes the listing's mean review rating, serving from the
// cache when possible. Listings without reviews rate 0.
func (r *Repository) AverageRating(listingID string) (float64, error) {
	ctx := context.Background()
	if avg, ok := r.cache.Get(ctx, listingID); ok {
		return avg, nil
	}

	var avg float64
	err := r.db.Model(&models.Review{}).
		Where("listing_id = ?", listingID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, translate(err)
	}
	r.cache.Set(ctx, listingID, avg)
	return avg, nil
}
