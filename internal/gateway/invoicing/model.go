package invoicing

import "time"

type lineItemRequest struct {
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
}

type createInvoiceRequest struct {
	LineItems      []lineItemRequest `json:"line_items"`
	DueDate        string            `json:"due_date"`
	DeliveryMethod string            `json:"delivery_method"`
}

type cancelInvoiceRequest struct {
	Reason string `json:"reason"`
}

type invoiceResponse struct {
	ID         string     `json:"id"`
	Number     string     `json:"number"`
	Status     string     `json:"status"`
	PaidAmount int64      `json:"paid_amount"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	SentAt     *time.Time `json:"sent_at,omitempty"`
	ViewedAt   *time.Time `json:"viewed_at,omitempty"`
	PaidAt     *time.Time `json:"paid_at,omitempty"`
}
