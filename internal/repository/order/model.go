package order

import "time"

type OrderDB struct {
	ID          int64
	OrderNumber string
	QuoteID     *int64

	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Address       string
	City          string
	State         string
	Zip           string

	ServiceDescription string

	Status     string
	AssignedTo *string

	ScheduledDeliveryDate *time.Time
	ScheduledPickupDate   *time.Time
	ActualDeliveryDate    *time.Time
	ActualPickupDate      *time.Time
	CompletedAt           *time.Time

	QuotedPriceCents int64
	FinalPriceCents  *int64

	InternalNotes string
	DriverNotes   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
