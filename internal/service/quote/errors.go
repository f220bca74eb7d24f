package quote

import "errors"

var (
	ErrInvalidQuoteID        = errors.New("invalid quote id")
	ErrMissingRequiredFields = errors.New("missing required fields")

	// Promotion preconditions, each naming the field the admin still has to
	// fill in.
	ErrMissingDropoffDate = errors.New("dropoff date is required")
	ErrMissingDropoffTime = errors.New("dropoff time is required")

	ErrQuoteNotFound        = errors.New("quote not found")
	ErrQuoteAlreadyAccepted = errors.New("quote already accepted")
)
