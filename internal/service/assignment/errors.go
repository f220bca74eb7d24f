package assignment

import "errors"

var (
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidDumpsterID = errors.New("invalid dumpster id")

	ErrDumpsterNotFound        = errors.New("dumpster not found")
	ErrDumpsterUnavailable     = errors.New("dumpster already assigned or out of rotation")
	ErrOrderAlreadyHasDumpster = errors.New("order already has a dumpster assigned")
	ErrAssignmentNotFound      = errors.New("no dumpster assigned to this order")
	ErrHomeYardNotAssignable   = errors.New("home yard record cannot be assigned")
	ErrOrderClosed             = errors.New("order no longer accepts assignments")
)
