//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"
	"time"

	"rolloff/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, paymentModify entities.PaymentModify) (*entities.Payment, error)
	GetByID(ctx context.Context, id int64) (*entities.Payment, error)
	GetActiveByOrderID(ctx context.Context, orderID int64) (*entities.Payment, error)
	GetByOrderID(ctx context.Context, orderID int64) ([]entities.Payment, error)
	Update(ctx context.Context, paymentModify entities.PaymentModify) (*entities.Payment, error)
	Delete(ctx context.Context, id int64) error
	MarkOverdueWhereDue(ctx context.Context, now time.Time) (int64, error)
}

type OrderGetter interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
}

// InvoicingProvider is the external invoicing API. It owns the real payment
// state machine; the local row only mirrors it.
type InvoicingProvider interface {
	CreateInvoice(ctx context.Context, lineItems []entities.InvoiceLineItem, dueDate time.Time, deliveryMethod string) (*entities.ProviderInvoice, error)
	SendInvoice(ctx context.Context, providerInvoiceID string) (*entities.ProviderInvoice, error)
	GetInvoice(ctx context.Context, providerInvoiceID string) (*entities.ProviderInvoice, error)
	CancelInvoice(ctx context.Context, providerInvoiceID, reason string) (*entities.ProviderInvoice, error)
}
