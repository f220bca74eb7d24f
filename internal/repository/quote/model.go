package quote

import "time"

type QuoteDB struct {
	ID int64

	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Address       string
	City          string
	State         string
	Zip           string

	ServiceDescription string

	Status string

	DropoffDate *time.Time
	DropoffTime *string
	PickupDate  *time.Time

	QuotedPriceCents int64
	Notes            string

	CreatedAt time.Time
	UpdatedAt time.Time
}
