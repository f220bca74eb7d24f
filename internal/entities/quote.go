package entities

import "time"

type Quote struct {
	ID int64

	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	Address       string
	City          string
	State         string
	Zip           string

	ServiceDescription string

	Status QuoteStatusType

	DropoffDate *time.Time
	DropoffTime *string
	PickupDate  *time.Time

	QuotedPriceCents int64
	Notes            string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type QuoteStatusType string

const (
	QuotePending   QuoteStatusType = "pending"
	QuoteQuoted    QuoteStatusType = "quoted"
	QuoteAccepted  QuoteStatusType = "accepted"
	QuoteDeclined  QuoteStatusType = "declined"
	QuoteCompleted QuoteStatusType = "completed"
)

func (s QuoteStatusType) String() string {
	return string(s)
}

type QuoteModify struct {
	ID *int64

	CustomerName  *string
	CustomerPhone *string
	CustomerEmail *string
	Address       *string
	City          *string
	State         *string
	Zip           *string

	ServiceDescription *string

	Status *QuoteStatusType

	DropoffDate *time.Time
	DropoffTime *string
	PickupDate  *time.Time

	QuotedPriceCents *int64
	Notes            *string
}

// QuoteOverrides is the in-flight edit overlay a caller may supply when
// promoting a quote. Non-nil fields win over the stored quote values.
type QuoteOverrides struct {
	CustomerName  *string
	CustomerPhone *string
	CustomerEmail *string
	Address       *string
	City          *string
	State         *string
	Zip           *string

	ServiceDescription *string

	DropoffDate *time.Time
	DropoffTime *string
	PickupDate  *time.Time

	QuotedPriceCents *int64
	AssignedTo       *string
	Notes            *string
}
