// Package dto holds the wire shapes shared by the REST handlers and their
// converters from domain entities.
package dto

import (
	"time"

	"rolloff/internal/entities"
)

type Quote struct {
	ID int64 `json:"id"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email,omitempty"`
	Address       string `json:"address"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	Zip           string `json:"zip,omitempty"`

	ServiceDescription string `json:"service_description"`

	Status string `json:"status"`

	DropoffDate *string `json:"dropoff_date,omitempty"`
	DropoffTime *string `json:"dropoff_time,omitempty"`
	PickupDate  *string `json:"pickup_date,omitempty"`

	QuotedPriceCents int64  `json:"quoted_price_cents"`
	Notes            string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Order struct {
	ID          int64  `json:"id"`
	OrderNumber string `json:"order_number"`
	QuoteID     *int64 `json:"quote_id,omitempty"`

	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	CustomerEmail string `json:"customer_email,omitempty"`
	Address       string `json:"address"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	Zip           string `json:"zip,omitempty"`

	ServiceDescription string `json:"service_description"`

	Status     string  `json:"status"`
	AssignedTo *string `json:"assigned_to,omitempty"`

	ScheduledDeliveryDate *string    `json:"scheduled_delivery_date,omitempty"`
	ScheduledPickupDate   *string    `json:"scheduled_pickup_date,omitempty"`
	ActualDeliveryDate    *time.Time `json:"actual_delivery_date,omitempty"`
	ActualPickupDate      *time.Time `json:"actual_pickup_date,omitempty"`
	CompletedAt           *time.Time `json:"completed_at,omitempty"`

	QuotedPriceCents int64  `json:"quoted_price_cents"`
	FinalPriceCents  *int64 `json:"final_price_cents,omitempty"`

	InternalNotes string `json:"internal_notes,omitempty"`
	DriverNotes   string `json:"driver_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Dumpster struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	Status         string     `json:"status"`
	CurrentOrderID *int64     `json:"current_order_id,omitempty"`
	Address        *string    `json:"address,omitempty"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	LastAssignedAt *time.Time `json:"last_assigned_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type Payment struct {
	ID                int64      `json:"id"`
	OrderID           int64      `json:"order_id"`
	ProviderInvoiceID string     `json:"provider_invoice_id"`
	PaymentNumber     string     `json:"payment_number"`
	Status            string     `json:"status"`
	TotalAmountCents  int64      `json:"total_amount_cents"`
	PaidAmountCents   int64      `json:"paid_amount_cents"`
	DueDate           *string    `json:"due_date,omitempty"`
	SentAt            *time.Time `json:"sent_at,omitempty"`
	ViewedAt          *time.Time `json:"viewed_at,omitempty"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func FromQuote(quote *entities.Quote) Quote {
	return Quote{
		ID:                 quote.ID,
		CustomerName:       quote.CustomerName,
		CustomerPhone:      quote.CustomerPhone,
		CustomerEmail:      quote.CustomerEmail,
		Address:            quote.Address,
		City:               quote.City,
		State:              quote.State,
		Zip:                quote.Zip,
		ServiceDescription: quote.ServiceDescription,
		Status:             quote.Status.String(),
		DropoffDate:        formatDate(quote.DropoffDate),
		DropoffTime:        quote.DropoffTime,
		PickupDate:         formatDate(quote.PickupDate),
		QuotedPriceCents:   quote.QuotedPriceCents,
		Notes:              quote.Notes,
		CreatedAt:          quote.CreatedAt,
		UpdatedAt:          quote.UpdatedAt,
	}
}

func FromOrder(order *entities.Order) Order {
	return Order{
		ID:                    order.ID,
		OrderNumber:           order.OrderNumber,
		QuoteID:               order.QuoteID,
		CustomerName:          order.CustomerName,
		CustomerPhone:         order.CustomerPhone,
		CustomerEmail:         order.CustomerEmail,
		Address:               order.Address,
		City:                  order.City,
		State:                 order.State,
		Zip:                   order.Zip,
		ServiceDescription:    order.ServiceDescription,
		Status:                order.Status.String(),
		AssignedTo:            order.AssignedTo,
		ScheduledDeliveryDate: formatDate(order.ScheduledDeliveryDate),
		ScheduledPickupDate:   formatDate(order.ScheduledPickupDate),
		ActualDeliveryDate:    order.ActualDeliveryDate,
		ActualPickupDate:      order.ActualPickupDate,
		CompletedAt:           order.CompletedAt,
		QuotedPriceCents:      order.QuotedPriceCents,
		FinalPriceCents:       order.FinalPriceCents,
		InternalNotes:         order.InternalNotes,
		DriverNotes:           order.DriverNotes,
		CreatedAt:             order.CreatedAt,
		UpdatedAt:             order.UpdatedAt,
	}
}

func FromDumpster(dumpster *entities.Dumpster) Dumpster {
	return Dumpster{
		ID:             dumpster.ID,
		Name:           dumpster.Name,
		Status:         dumpster.Status.String(),
		CurrentOrderID: dumpster.CurrentOrderID,
		Address:        dumpster.Address,
		Latitude:       dumpster.Latitude,
		Longitude:      dumpster.Longitude,
		LastAssignedAt: dumpster.LastAssignedAt,
		CreatedAt:      dumpster.CreatedAt,
		UpdatedAt:      dumpster.UpdatedAt,
	}
}

func FromPayment(payment *entities.Payment) Payment {
	return Payment{
		ID:                payment.ID,
		OrderID:           payment.OrderID,
		ProviderInvoiceID: payment.ProviderInvoiceID,
		PaymentNumber:     payment.PaymentNumber,
		Status:            payment.Status.String(),
		TotalAmountCents:  payment.TotalAmountCents,
		PaidAmountCents:   payment.PaidAmountCents,
		DueDate:           formatDate(payment.DueDate),
		SentAt:            payment.SentAt,
		ViewedAt:          payment.ViewedAt,
		PaidAt:            payment.PaidAt,
		CreatedAt:         payment.CreatedAt,
		UpdatedAt:         payment.UpdatedAt,
	}
}

// ParseDate parses the YYYY-MM-DD wire format used for calendar fields.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(time.DateOnly, value)
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.DateOnly)
	return &formatted
}
