package invoicing

import "errors"

var (
	ErrInvoiceNotFound       = errors.New("invoice not found at provider")
	ErrInvalidInvoiceRequest = errors.New("provider rejected invoice request")
	ErrProviderUnavailable   = errors.New("invoicing provider unavailable")
)
