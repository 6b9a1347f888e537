package models

import "errors"

// Booking rejections, in the order the validator reports them.
var (
	ErrInvalidRange            = errors.New("check-out date must be after check-in date")
	ErrGuestCapacityExceeded   = errors.New("number of guests exceeds listing capacity")
	ErrDateOverlap             = errors.New("dates overlap an active booking for this listing")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
	ErrHostBooking             = errors.New("hosts cannot book their own listing")
)

// Review rejections.
var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrEmptyComment    = errors.New("comment must not be empty")
	ErrDuplicateReview = errors.New("user already reviewed this listing")
)

// Storage and seeding outcomes.
var (
	ErrNotFound            = errors.New("record not found")
	ErrConstraintViolation = errors.New("storage constraint violation")
	ErrHasDependents       = errors.New("listing has dependent bookings or reviews")
	ErrNotPending          = errors.New("booking is not in pending status")
	ErrRetryExhausted      = errors.New("retry limit exhausted while sampling")
)
