package payment

import "errors"

var (
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrInvalidPaymentID = errors.New("invalid payment id")

	ErrPaymentNotFound = errors.New("payment not found")
	ErrOrderNotFound   = errors.New("order not found")

	// ErrPaymentAlreadyActive: one active invoice per order at a time.
	ErrPaymentAlreadyActive = errors.New("order already has an active payment")
	ErrPaymentNotDraft      = errors.New("payment is not a draft")
	ErrPaymentNotCanceled   = errors.New("payment is not canceled")
	ErrPaymentTerminal      = errors.New("payment is in a terminal status")
)
