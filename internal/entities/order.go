package entities

import "time"

type Order struct {
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

	Status     OrderStatusType
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

type OrderStatusType string

const (
	OrderPending      OrderStatusType = "pending"
	OrderScheduled    OrderStatusType = "scheduled"
	OrderOnWay        OrderStatusType = "on_way"
	OrderDelivered    OrderStatusType = "delivered"
	OrderOnWayPickup  OrderStatusType = "on_way_pickup"
	OrderPickedUp     OrderStatusType = "picked_up"
	OrderCompleted    OrderStatusType = "completed"
	OrderCancelled    OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Terminal reports whether an order accepts no further transitions.
func (s OrderStatusType) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// PriceCents returns the authoritative price: the final price once set,
// the quoted price otherwise.
func (o *Order) PriceCents() int64 {
	if o.FinalPriceCents != nil {
		return *o.FinalPriceCents
	}
	return o.QuotedPriceCents
}

// OptionalTime distinguishes "leave the column alone" (Set=false) from
// "write this value, possibly NULL" (Set=true).
type OptionalTime struct {
	Set   bool
	Value *time.Time
}

func WriteTime(t time.Time) OptionalTime {
	return OptionalTime{Set: true, Value: &t}
}

func ClearTime() OptionalTime {
	return OptionalTime{Set: true}
}

// OrderStatusUpdate carries a status change together with the stage
// timestamps it sets or clears.
type OrderStatusUpdate struct {
	Status             OrderStatusType
	ActualDeliveryDate OptionalTime
	ActualPickupDate   OptionalTime
	CompletedAt        OptionalTime
}

type OrderModify struct {
	ID          *int64
	OrderNumber *string
	QuoteID     *int64

	CustomerName  *string
	CustomerPhone *string
	CustomerEmail *string
	Address       *string
	City          *string
	State         *string
	Zip           *string

	ServiceDescription *string

	Status     *OrderStatusType
	AssignedTo *string

	ScheduledDeliveryDate *time.Time
	ScheduledPickupDate   *time.Time
	ActualDeliveryDate    *time.Time
	ActualPickupDate      *time.Time
	CompletedAt           *time.Time

	QuotedPriceCents *int64
	FinalPriceCents  *int64

	InternalNotes *string
	DriverNotes   *string
}
