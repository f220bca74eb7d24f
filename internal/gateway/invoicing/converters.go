package invoicing

import (
	"rolloff/internal/entities"
)

// Provider status names that differ from ours.
var statusAliases = map[string]entities.PaymentStatusType{
	"open":    entities.PaymentPending,
	"partial": entities.PaymentPartiallyPaid,
	"void":    entities.PaymentCanceled,
}

func toDomainStatus(providerStatus string) entities.PaymentStatusType {
	if status, ok := statusAliases[providerStatus]; ok {
		return status
	}
	return entities.PaymentStatusType(providerStatus)
}

func toDomain(resp *invoiceResponse) *entities.ProviderInvoice {
	return &entities.ProviderInvoice{
		ProviderID:      resp.ID,
		Number:          resp.Number,
		Status:          toDomainStatus(resp.Status),
		PaidAmountCents: resp.PaidAmount,
		DueDate:         resp.DueDate,
		SentAt:          resp.SentAt,
		ViewedAt:        resp.ViewedAt,
		PaidAt:          resp.PaidAt,
	}
}

func fromDomainLineItems(lineItems []entities.InvoiceLineItem) []lineItemRequest {
	out := make([]lineItemRequest, 0, len(lineItems))
	for _, item := range lineItems {
		out = append(out, lineItemRequest{
			Description: item.Description,
			Amount:      item.AmountCents,
		})
	}
	return out
}
