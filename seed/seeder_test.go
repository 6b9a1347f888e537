package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ikkkkak/travel-listings/booking"
	"github.com/ikkkkak/travel-listings/config"
	"github.com/ikkkkak/travel-listings/models"
	"github.com/ikkkkak/travel-listings/seed"
	"github.com/ikkkkak/travel-listings/storage"
)

func setup(t *testing.T) (*gorm.DB, *storage.Repository) {
	t.Helper()
	cfg := config.Config{
		DatabaseDriver:      "sqlite",
		DatabaseURL:         ":memory:",
		ListingDeletePolicy: config.DeletePolicyCascade,
	}
	db, err := storage.Connect(cfg)
	require.NoError(t, err)
	return db, storage.NewRepository(db, cfg, nil)
}

func runSeeder(t *testing.T, repo *storage.Repository, cfg seed.Config) *seed.Summary {
	t.Helper()
	seeder, err := seed.NewSeeder(repo, seed.NewSampler(42), cfg)
	require.NoError(t, err)
	summary, err := seeder.Run()
	require.NoError(t, err)
	return summary
}

func TestNewSeederRejectsInvalidConfig(t *testing.T) {
	_, repo := setup(t)

	cfg := seed.DefaultConfig()
	cfg.RetryLimit = 0
	_, err := seed.NewSeeder(repo, seed.NewSampler(1), cfg)
	assert.Error(t, err)

	cfg = seed.DefaultConfig()
	cfg.Bookings = -1
	_, err = seed.NewSeeder(repo, seed.NewSampler(1), cfg)
	assert.Error(t, err)
}

func TestSeederProducesConsistentDataset(t *testing.T) {
	db, repo := setup(t)

	summary := runSeeder(t, repo, seed.Config{
		Users:      5,
		Listings:   5,
		Bookings:   10,
		Reviews:    10,
		RetryLimit: 10,
	})

	assert.Equal(t, 5, summary.Users)
	assert.Equal(t, 5, summary.Listings)
	assert.Equal(t, 10, summary.Bookings+summary.SkippedBookings)
	assert.Equal(t, 10, summary.Reviews+summary.SkippedReviews)
	assert.LessOrEqual(t, summary.Bookings, 10)
	assert.LessOrEqual(t, summary.Reviews, 10)

	var listings []models.Listing
	require.NoError(t, db.Find(&listings).Error)
	byID := map[string]models.Listing{}
	for _, l := range listings {
		byID[l.ID] = l
	}

	var bookings []models.Booking
	require.NoError(t, db.Find(&bookings).Error)
	assert.Len(t, bookings, summary.Bookings)

	perListing := map[string][]models.Booking{}
	for _, b := range bookings {
		listing, ok := byID[b.ListingID]
		require.True(t, ok, "booking references missing listing")

		assert.True(t, b.CheckIn.Before(b.CheckOut))
		assert.GreaterOrEqual(t, b.NumGuests, 1)
		assert.LessOrEqual(t, b.NumGuests, listing.MaxGuests)
		assert.Greater(t, b.TotalPrice, 0.0)
		assert.NotEqual(t, listing.HostID, b.GuestID)

		perListing[b.ListingID] = append(perListing[b.ListingID], b)
	}

	// No two active bookings on the same listing may overlap.
	for _, group := range perListing {
		for i := range group {
			for j := i + 1; j < len(group); j++ {
				if !group[i].IsActive() || !group[j].IsActive() {
					continue
				}
				assert.False(t,
					booking.Overlaps(group[i].CheckIn, group[i].CheckOut, group[j].CheckIn, group[j].CheckOut),
					"active bookings %s and %s overlap", group[i].ID, group[j].ID)
			}
		}
	}

	var reviews []models.Review
	require.NoError(t, db.Find(&reviews).Error)
	assert.Len(t, reviews, summary.Reviews)

	seen := map[[2]string]bool{}
	for _, rv := range reviews {
		_, ok := byID[rv.ListingID]
		require.True(t, ok, "review references missing listing")

		assert.GreaterOrEqual(t, rv.Rating, 1)
		assert.LessOrEqual(t, rv.Rating, 5)
		assert.NotEmpty(t, rv.Comment)

		pair := [2]string{rv.ListingID, rv.AuthorID}
		assert.False(t, seen[pair], "duplicate review for pair %v", pair)
		seen[pair] = true
	}
}

func TestSeederCleanModeLeavesOnlyFreshData(t *testing.T) {
	db, repo := setup(t)

	runSeeder(t, repo, seed.Config{Users: 4, Listings: 4, Bookings: 6, Reviews: 6, RetryLimit: 10})

	summary := runSeeder(t, repo, seed.Config{
		Users:      3,
		Listings:   3,
		Bookings:   5,
		Reviews:    5,
		RetryLimit: 10,
		Clean:      true,
	})

	var users, listings, bookings, reviews int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Listing{}).Count(&listings).Error)
	require.NoError(t, db.Model(&models.Booking{}).Count(&bookings).Error)
	require.NoError(t, db.Model(&models.Review{}).Count(&reviews).Error)

	assert.Equal(t, int64(summary.Users), users)
	assert.Equal(t, int64(summary.Listings), listings)
	assert.Equal(t, int64(summary.Bookings), bookings)
	assert.Equal(t, int64(summary.Reviews), reviews)

	// No orphans referencing cleaned listings.
	var orphanBookings int64
	require.NoError(t, db.Model(&models.Booking{}).
		Where("listing_id NOT IN (?)", db.Model(&models.Listing{}).Select("id")).
		Count(&orphanBookings).Error)
	assert.Zero(t, orphanBookings)

	var orphanReviews int64
	require.NoError(t, db.Model(&models.Review{}).
		Where("listing_id NOT IN (?)", db.Model(&models.Listing{}).Select("id")).
		Count(&orphanReviews).Error)
	assert.Zero(t, orphanReviews)
}

func TestSeederSkipsWhenConstraintSpaceIsExhausted(t *testing.T) {
	_, repo := setup(t)

	// One user hosts every listing; with host bookings and self reviews
	// disallowed there is no valid guest or author, so every candidate is
	// skipped rather than aborting the run.
	summary := runSeeder(t, repo, seed.Config{
		Users:      1,
		Listings:   2,
		Bookings:   4,
		Reviews:    4,
		RetryLimit: 5,
	})

	assert.Equal(t, 1, summary.Users)
	assert.Equal(t, 2, summary.Listings)
	assert.Zero(t, summary.Bookings)
	assert.Equal(t, 4, summary.SkippedBookings)
	assert.Zero(t, summary.Reviews)
	assert.Equal(t, 4, summary.SkippedReviews)
}

func TestSeederWithZeroVolumes(t *testing.T) {
	db, repo := setup(t)

	summary := runSeeder(t, repo, seed.Config{RetryLimit: 10})
	assert.Zero(t, summary.Users)
	assert.Zero(t, summary.Listings)
	assert.Zero(t, summary.Bookings)
	assert.Zero(t, summary.Reviews)

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Zero(t, users)
}
