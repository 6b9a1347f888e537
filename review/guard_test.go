package review_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ikkkkak/travel-listings/models"
	"github.com/ikkkkak/travel-listings/review"
)

func TestValidateRating(t *testing.T) {
	for _, rating := range []int{1, 2, 3, 4, 5} {
		assert.NoError(t, review.ValidateRating(rating), "rating=%d", rating)
	}
	for _, rating := range []int{0, -1, 6, 100} {
		assert.ErrorIs(t, review.ValidateRating(rating), models.ErrInvalidRating, "rating=%d", rating)
	}
}

func TestValidateComment(t *testing.T) {
	assert.NoError(t, review.ValidateComment("Great stay!"))
	assert.ErrorIs(t, review.ValidateComment(""), models.ErrEmptyComment)
	assert.ErrorIs(t, review.ValidateComment("   \t\n"), models.ErrEmptyComment)
}

func TestCanCreate(t *testing.T) {
	existing := []models.Review{
		{ID: "r1", ListingID: "listing-1", AuthorID: "user-1"},
		{ID: "r2", ListingID: "listing-2", AuthorID: "user-2"},
	}

	assert.NoError(t, review.CanCreate("listing-1", "user-2", existing))
	assert.NoError(t, review.CanCreate("listing-2", "user-1", existing))
	assert.NoError(t, review.CanCreate("listing-3", "user-1", nil))

	assert.ErrorIs(t, review.CanCreate("listing-1", "user-1", existing), models.ErrDuplicateReview)
	assert.ErrorIs(t, review.CanCreate("listing-2", "user-2", existing), models.ErrDuplicateReview)
}

func TestValidateChecksContentBeforeUniqueness(t *testing.T) {
	existing := []models.Review{{ID: "r1", ListingID: "listing-1", AuthorID: "user-1"}}

	// Same author and listing as an existing review, but the rating error
	// must win.
	rv := &models.Review{ListingID: "listing-1", AuthorID: "user-1", Rating: 0, Comment: "fine"}
	assert.ErrorIs(t, review.Validate(rv, existing), models.ErrInvalidRating)

	rv.Rating = 4
	rv.Comment = ""
	assert.ErrorIs(t, review.Validate(rv, existing), models.ErrEmptyComment)

	rv.Comment = "fine"
	assert.ErrorIs(t, review.Validate(rv, existing), models.ErrDuplicateReview)

	rv.AuthorID = "user-2"
	assert.NoError(t, review.Validate(rv, existing))
}
