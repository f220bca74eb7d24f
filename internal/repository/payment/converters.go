package payment

import (
	"rolloff/internal/entities"
)

func ToDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}

	return &entities.Payment{
		ID:                p.ID,
		OrderID:           p.OrderID,
		ProviderInvoiceID: p.ProviderInvoiceID,
		PaymentNumber:     p.PaymentNumber,
		Status:            entities.PaymentStatusType(p.Status),
		TotalAmountCents:  p.TotalAmountCents,
		PaidAmountCents:   p.PaidAmountCents,
		DueDate:           p.DueDate,
		SentAt:            p.SentAt,
		ViewedAt:          p.ViewedAt,
		PaidAt:            p.PaidAt,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func ToDomainList(paymentsDB []PaymentDB) []entities.Payment {
	if len(paymentsDB) == 0 {
		return []entities.Payment{}
	}

	result := make([]entities.Payment, len(paymentsDB))
	for i, paymentDB := range paymentsDB {
		result[i] = *ToDomain(&paymentDB)
	}
	return result
}
