package review

import "orbital-booking/internal/pkg/errs"

var (
	ErrInvalidRating  = errs.Class("rating must be between 1 and 5", errs.ErrInvalidInput)
	ErrEmptyComment   = errs.Class("comment cannot be empty", errs.ErrInvalidInput)
	ErrCommentTooLong = errs.Class("comment exceeds maximum length", errs.ErrInvalidInput)

	ErrReservationNotEligible = errs.Class("reservation is not eligible for review", errs.ErrForbidden)
	ErrReviewAlreadyExists    = errs.Class("review already exists for this reservation", errs.ErrAlreadyTerminal)
)
