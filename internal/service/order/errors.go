package order

import "errors"

var (
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrUnknownDriver         = errors.New("driver is not on the roster")

	// ErrDumpsterNotAssigned is the distinguished refusal for moving an order
	// to on_way without a dumpster: the caller is expected to prompt for an
	// assignment and retry.
	ErrDumpsterNotAssigned = errors.New("order has no dumpster assigned")

	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderNumberTaken = errors.New("order number already exists")
)
