package entities

import "time"

type Payment struct {
	ID                int64
	OrderID           int64
	ProviderInvoiceID string
	PaymentNumber     string
	Status            PaymentStatusType
	TotalAmountCents  int64
	PaidAmountCents   int64
	DueDate           *time.Time
	SentAt            *time.Time
	ViewedAt          *time.Time
	PaidAt            *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type PaymentStatusType string

const (
	PaymentDraft         PaymentStatusType = "draft"
	PaymentPending       PaymentStatusType = "pending"
	PaymentSent          PaymentStatusType = "sent"
	PaymentViewed        PaymentStatusType = "viewed"
	PaymentPartiallyPaid PaymentStatusType = "partially_paid"
	PaymentPaid          PaymentStatusType = "paid"
	PaymentOverdue       PaymentStatusType = "overdue"
	PaymentCanceled      PaymentStatusType = "canceled"
	PaymentFailed        PaymentStatusType = "failed"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

// Active reports whether this payment blocks creating another one for the
// same order.
func (s PaymentStatusType) Active() bool {
	switch s {
	case PaymentDraft, PaymentPending, PaymentSent, PaymentViewed,
		PaymentPartiallyPaid, PaymentOverdue:
		return true
	default:
		return false
	}
}

// Terminal reports whether the payment accepts no further transitions.
func (s PaymentStatusType) Terminal() bool {
	switch s {
	case PaymentPaid, PaymentCanceled, PaymentFailed:
		return true
	default:
		return false
	}
}

// InvoiceLineItem is one billable line sent to the invoicing provider.
type InvoiceLineItem struct {
	Description string
	AmountCents int64
}

// ProviderInvoice is the provider's view of an invoice, mirrored into the
// local payment row on every sync.
type ProviderInvoice struct {
	ProviderID      string
	Number          string
	Status          PaymentStatusType
	PaidAmountCents int64
	DueDate         *time.Time
	SentAt          *time.Time
	ViewedAt        *time.Time
	PaidAt          *time.Time
}

type PaymentModify struct {
	ID                *int64
	OrderID           *int64
	ProviderInvoiceID *string
	PaymentNumber     *string
	Status            *PaymentStatusType
	TotalAmountCents  *int64
	PaidAmountCents   *int64
	DueDate           *time.Time
	SentAt            *time.Time
	ViewedAt          *time.Time
	PaidAt            *time.Time
}
