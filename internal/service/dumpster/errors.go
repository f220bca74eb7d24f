package dumpster

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDumpsterID     = errors.New("invalid dumpster id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrDumpsterInUse         = errors.New("dumpster is assigned to an order")

	ErrDumpsterNotFound = errors.New("dumpster not found")
	ErrConflict         = errors.New("resource already exists")
)
