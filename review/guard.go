// Package review validates review content and enforces the
// one-review-per-user-per-listing rule.
package review

import (
	"strings"

	"github.com/ikkkkak/travel-listings/models"
)

// ValidateRating checks the 1-5 star bound.
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return models.ErrInvalidRating
	}
	return nil
}

// ValidateComment rejects empty or whitespace-only comments.
func ValidateComment(comment string) error {
	if strings.TrimSpace(comment) == "" {
		return models.ErrEmptyComment
	}
	return nil
}

// CanCreate scans the listing's existing reviews for one by the same author.
func CanCreate(listingID, authorID string, existing []models.Review) error {
	for i := range existing {
		if existing[i].ListingID == listingID && existing[i].AuthorID == authorID {
			return models.ErrDuplicateReview
		}
	}
	return nil
}

// Validate composes the content checks and the uniqueness guard, content
// first.
func Validate(r *models.Review, existing []models.Review) error {
	if err := ValidateRating(r.Rating); err != nil {
		return err
	}
	if err := ValidateComment(r.Comment); err != nil {
		return err
	}
	return CanCreate(r.ListingID, r.AuthorID, existing)
}
