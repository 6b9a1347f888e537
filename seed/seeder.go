// Package seed generates an internally consistent synthetic dataset: users,
// listings hosted by those users, bookings that pass the reservation
// validator, and at most one review per user per listing. It never touches
// the HTTP layer; everything goes through the Store contract.
package seed

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/ikkkkak/travel-listings/booking"
	"github.com/ikkkkak/travel-listings/models"
	"github.com/ikkkkak/travel-listings/review"
)

// Store is the narrow persistence contract the seeder runs against.
// *storage.Repository satisfies it.
type Store interface {
	CreateUser(*models.User) error
	CreateListing(*models.Listing) error
	InsertBooking(*models.Booking) error
	InsertReview(*models.Review) error
	ActiveBookingsFor(listingID string) ([]models.Booking, error)
	ReviewsFor(listingID string) ([]models.Review, error)
	DeleteAll(kind string) error
	DeleteSeededUsers() error
}

// Config holds the generation volumes and policies. Field ranges for sampled
// listing attributes live in the sampling code below and mirror the defaults
// the dataset was designed around: price 50-500 per night, 1-4 bedrooms,
// 1-3 bathrooms, capacity 1-8.
type Config struct {
	Users    int `validate:"gte=0"`
	Listings int `validate:"gte=0"`
	Bookings int `validate:"gte=0"`
	Reviews  int `validate:"gte=0"`

	// Clean removes reviews, bookings, listings and previously seeded users
	// before generating, in that order.
	Clean bool

	// RetryLimit bounds how often a rejected booking or review candidate is
	// resampled before being skipped.
	RetryLimit int `validate:"gte=1"`

	// AllowHostBooking lets a host book their own listing.
	AllowHostBooking bool
}

func DefaultConfig() Config {
	return Config{
		Users:      10,
		Listings:   20,
		Bookings:   30,
		Reviews:    50,
		RetryLimit: 10,
	}
}

// Summary reports what a run produced. Skipped counts track candidates
// dropped after exhausting the retry limit; they are expected when the
// requested volume outgrows the space of valid combinations.
type Summary struct {
	Users           int
	Listings        int
	Bookings        int
	Reviews         int
	SkippedBookings int
	SkippedReviews  int
}

type Seeder struct {
	store   Store
	sampler Sampler
	cfg     Config
}

func NewSeeder(store Store, sampler Sampler, cfg Config) (*Seeder, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid seed config: %w", err)
	}
	return &Seeder{store: store, sampler: sampler, cfg: cfg}, nil
}

func (s *Seeder) Run() (*Summary, error) {
	if s.cfg.Clean {
		if err := s.clean(); err != nil {
			return nil, err
		}
	}

	summary := &Summary{}

	users, err := s.createUsers(summary)
	if err != nil {
		return nil, err
	}

	listings, err := s.createListings(users, summary)
	if err != nil {
		return nil, err
	}

	if err := s.createBookings(users, listings, summary); err != nil {
		return nil, err
	}
	if err := s.createReviews(users, listings, summary); err != nil {
		return nil, err
	}

	return summary, nil
}

func (s *Seeder) clean() error {
	log.Println("cleaning existing data")
	for _, kind := range []string{"reviews", "bookings", "listings"} {
		if err := s.store.DeleteAll(kind); err != nil {
			return fmt.Errorf("clean %s: %w", kind, err)
		}
	}
	if err := s.store.DeleteSeededUsers(); err != nil {
		return fmt.Errorf("clean users: %w", err)
	}
	return nil
}

func (s *Seeder) createUsers(summary *Summary) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	users := make([]models.User, 0, s.cfg.Users)
	for i := 0; i < s.cfg.Users; i++ {
		u := models.User{
			FirstName: s.sampler.FirstName(),
			LastName:  s.sampler.LastName(),
			Email:     fmt.Sprintf("user_%03d@example.com", i+1),
			Password:  string(hash),
			Role:      "user",
		}
		if err := s.store.CreateUser(&u); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		users = append(users, u)
	}
	summary.Users = len(users)
	return users, nil
}

func (s *Seeder) createListings(users []models.User, summary *Summary) ([]models.Listing, error) {
	if s.cfg.Listings > 0 && len(users) == 0 {
		log.Println("no users available, skipping listings")
		return nil, nil
	}

	listings := make([]models.Listing, 0, s.cfg.Listings)
	for i := 0; i < s.cfg.Listings; i++ {
		propertyType := s.sampler.PropertyType()
		city := s.sampler.City()
		host := users[s.sampler.IntBetween(0, len(users)-1)]

		l := models.Listing{
			HostID:        host.ID,
			Title:         fmt.Sprintf("%s in %s", propertyType, city),
			Description:   fmt.Sprintf("Beautiful %s located in the heart of %s.", propertyType, city),
			Location:      city,
			PricePerNight: float64(s.sampler.IntBetween(50, 500)),
			Bedrooms:      s.sampler.IntBetween(1, 4),
			Bathrooms:     s.sampler.IntBetween(1, 3),
			MaxGuests:     s.sampler.IntBetween(1, 8),
			IsAvailable:   s.sampler.IntBetween(1, 4) > 1,
		}
		if err := l.SetAmenities(s.sampler.Amenities()); err != nil {
			return nil, fmt.Errorf("encode amenities: %w", err)
		}
		if err := s.store.CreateListing(&l); err != nil {
			return nil, fmt.Errorf("create listing: %w", err)
		}
		listings = append(listings, l)
	}
	summary.Listings = len(listings)
	return listings, nil
}

func (s *Seeder) createBookings(users []models.User, listings []models.Listing, summary *Summary) error {
	if s.cfg.Bookings > 0 && (len(users) == 0 || len(listings) == 0) {
		log.Println("no users or listings available, skipping bookings")
		return nil
	}

	today := midnightUTC(time.Now())

	for i := 0; i < s.cfg.Bookings; i++ {
		created := false
		for attempt := 0; attempt < s.cfg.RetryLimit; attempt++ {
			listing := listings[s.sampler.IntBetween(0, len(listings)-1)]
			guest := users[s.sampler.IntBetween(0, len(users)-1)]
			if !s.cfg.AllowHostBooking && guest.ID == listing.HostID {
				continue
			}

			checkIn := today.AddDate(0, 0, s.sampler.IntBetween(-30, 60))
			checkOut := checkIn.AddDate(0, 0, s.sampler.IntBetween(1, 14))
			guests := s.sampler.IntBetween(1, min(listing.MaxGuests, 6))

			candidate := booking.Candidate{CheckIn: checkIn, CheckOut: checkOut, NumGuests: guests}
			active, err := s.store.ActiveBookingsFor(listing.ID)
			if err != nil {
				return fmt.Errorf("load active bookings: %w", err)
			}
			if err := booking.Validate(&listing, candidate, active); err != nil {
				continue
			}

			price, err := booking.TotalPrice(checkIn, checkOut, listing.PricePerNight)
			if err != nil {
				continue
			}

			b := models.Booking{
				ListingID:       listing.ID,
				GuestID:         guest.ID,
				CheckIn:         checkIn,
				CheckOut:        checkOut,
				NumGuests:       guests,
				TotalPrice:      price,
				Status:          s.sampleStatus(checkOut, today),
				SpecialRequests: s.sampler.SpecialRequest(),
			}
			if err := s.store.InsertBooking(&b); err != nil {
				return fmt.Errorf("insert booking: %w", err)
			}
			summary.Bookings++
			created = true
			break
		}
		if !created {
			summary.SkippedBookings++
			log.Printf("skipping booking %d: %v", i+1, models.ErrRetryExhausted)
		}
	}
	return nil
}

// sampleStatus draws from the documented distribution: 20% pending,
// 40% confirmed, 20% canceled, 20% completed. Completed requires an elapsed
// check-out; when the drawn dates are in the future it degrades to confirmed
// so the status machine's rules hold for every generated record.
func (s *Seeder) sampleStatus(checkOut, today time.Time) models.BookingStatus {
	roll := s.sampler.IntBetween(1, 100)
	switch {
	case roll <= 20:
		return models.BookingStatusPending
	case roll <= 60:
		return models.BookingStatusConfirmed
	case roll <= 80:
		return models.BookingStatusCanceled
	default:
		if checkOut.After(today) {
			return models.BookingStatusConfirmed
		}
		return models.BookingStatusCompleted
	}
}

func (s *Seeder) createReviews(users []models.User, listings []models.Listing, summary *Summary) error {
	if s.cfg.Reviews > 0 && (len(users) == 0 || len(listings) == 0) {
		log.Println("no users or listings available, skipping reviews")
		return nil
	}

	for i := 0; i < s.cfg.Reviews; i++ {
		created := false
		for attempt := 0; attempt < s.cfg.RetryLimit; attempt++ {
			listing := listings[s.sampler.IntBetween(0, len(listings)-1)]
			author := users[s.sampler.IntBetween(0, len(users)-1)]
			if author.ID == listing.HostID {
				continue
			}

			existing, err := s.store.ReviewsFor(listing.ID)
			if err != nil {
				return fmt.Errorf("load reviews: %w", err)
			}

			rv := models.Review{
				ListingID: listing.ID,
				AuthorID:  author.ID,
				Rating:    s.sampler.IntBetween(1, 5),
				Comment:   s.sampler.Comment(),
			}
			if err := review.Validate(&rv, existing); err != nil {
				continue
			}
			if err := s.store.InsertReview(&rv); err != nil {
				return fmt.Errorf("insert review: %w", err)
			}
			summary.Reviews++
			created = true
			break
		}
		if !created {
			summary.SkippedReviews++
			log.Printf("skipping review %d: %v", i+1, models.ErrRetryExhausted)
		}
	}
	return nil
}

func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
