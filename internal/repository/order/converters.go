package order

import (
	"rolloff/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		QuoteID:     o.QuoteID,

		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		CustomerEmail: o.CustomerEmail,
		Address:       o.Address,
		City:          o.City,
		State:         o.State,
		Zip:           o.Zip,

		ServiceDescription: o.ServiceDescription,

		Status:     entities.OrderStatusType(o.Status),
		AssignedTo: o.AssignedTo,

		ScheduledDeliveryDate: o.ScheduledDeliveryDate,
		ScheduledPickupDate:   o.ScheduledPickupDate,
		ActualDeliveryDate:    o.ActualDeliveryDate,
		ActualPickupDate:      o.ActualPickupDate,
		CompletedAt:           o.CompletedAt,

		QuotedPriceCents: o.QuotedPriceCents,
		FinalPriceCents:  o.FinalPriceCents,

		InternalNotes: o.InternalNotes,
		DriverNotes:   o.DriverNotes,

		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
