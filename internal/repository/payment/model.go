package payment

import "time"

type PaymentDB struct {
	ID                int64
	OrderID           int64
	ProviderInvoiceID string
	PaymentNumber     string
	Status            string
	TotalAmountCents  int64
	PaidAmountCents   int64
	DueDate           *time.Time
	SentAt            *time.Time
	ViewedAt          *time.Time
	PaidAt            *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
