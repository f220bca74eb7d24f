package quote

import (
	"rolloff/internal/entities"
)

func ToDomain(q *QuoteDB) *entities.Quote {
	if q == nil {
		return nil
	}

	return &entities.Quote{
		ID: q.ID,

		CustomerName:  q.CustomerName,
		CustomerPhone: q.CustomerPhone,
		CustomerEmail: q.CustomerEmail,
		Address:       q.Address,
		City:          q.City,
		State:         q.State,
		Zip:           q.Zip,

		ServiceDescription: q.ServiceDescription,

		Status: entities.QuoteStatusType(q.Status),

		DropoffDate: q.DropoffDate,
		DropoffTime: q.DropoffTime,
		PickupDate:  q.PickupDate,

		QuotedPriceCents: q.QuotedPriceCents,
		Notes:            q.Notes,

		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func ToDomainList(quotesDB []QuoteDB) []entities.Quote {
	if len(quotesDB) == 0 {
		return []entities.Quote{}
	}

	result := make([]entities.Quote, len(quotesDB))
	for i, quoteDB := range quotesDB {
		result[i] = *ToDomain(&quoteDB)
	}
	return result
}
