package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rolloff/internal/entities"
)

const deliveryMethodEmail = "email"

type Service struct {
	repository Repository
	orders     OrderGetter
	provider   InvoicingProvider
}

func New(repository Repository, orders OrderGetter, provider InvoicingProvider) *Service {
	return &Service{
		repository: repository,
		orders:     orders,
		provider:   provider,
	}
}

// Create opens an invoice with the provider and stores the mirrored row.
// Allowed only while the order has no active payment. The provider call
// happens first: a provider failure leaves nothing behind locally.
func (s *Service) Create(ctx context.Context, orderID int64, dueDate time.Time) (*entities.Payment, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	_, err = s.repository.GetActiveByOrderID(ctx, orderID)
	if err == nil {
		return nil, ErrPaymentAlreadyActive
	}
	if !errors.Is(err, ErrPaymentNotFound) {
		return nil, fmt.Errorf("check active payment: %w", err)
	}

	lineItems := buildLineItems(order)
	total := totalAmount(lineItems)

	invoice, err := s.provider.CreateInvoice(ctx, lineItems, dueDate, deliveryMethodEmail)
	if err != nil {
		return nil, fmt.Errorf("provider create invoice: %w", err)
	}

	created, err := s.repository.Create(ctx, entities.PaymentModify{
		OrderID:           &orderID,
		ProviderInvoiceID: &invoice.ProviderID,
		PaymentNumber:     &invoice.Number,
		Status:            &invoice.Status,
		TotalAmountCents:  &total,
		DueDate:           &dueDate,
	})
	if err != nil {
		return nil, fmt.Errorf("store payment: %w", err)
	}

	return created, nil
}

// Send delivers a draft invoice through the provider. The local status only
// advances on provider confirmation.
func (s *Service) Send(ctx context.Context, paymentID int64) (*entities.Payment, error) {
	payment, err := s.getPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if payment.Status != entities.PaymentDraft {
		return nil, fmt.Errorf("%w: status is %s", ErrPaymentNotDraft, payment.Status)
	}

	invoice, err := s.provider.SendInvoice(ctx, payment.ProviderInvoiceID)
	if err != nil {
		return nil, fmt.Errorf("provider send invoice: %w", err)
	}

	sentAt := time.Now().UTC()
	if invoice.SentAt != nil {
		sentAt = *invoice.SentAt
	}

	updated, err := s.repository.Update(ctx, entities.PaymentModify{
		ID:     &payment.ID,
		Status: &invoice.Status,
		SentAt: &sentAt,
	})
	if err != nil {
		return nil, fmt.Errorf("store sent payment: %w", err)
	}

	return updated, nil
}

// RefreshStatus is a reconciliation pull: the provider's state overwrites the
// local mirror. Safe to call any number of times.
func (s *Service) RefreshStatus(ctx context.Context, paymentID int64) (*entities.Payment, error) {
	payment, err := s.getPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	invoice, err := s.provider.GetInvoice(ctx, payment.ProviderInvoiceID)
	if err != nil {
		return nil, fmt.Errorf("provider get invoice: %w", err)
	}

	updated, err := s.repository.Update(ctx, entities.PaymentModify{
		ID:              &payment.ID,
		Status:          &invoice.Status,
		PaidAmountCents: &invoice.PaidAmountCents,
		SentAt:          invoice.SentAt,
		ViewedAt:        invoice.ViewedAt,
		PaidAt:          invoice.PaidAt,
	})
	if err != nil {
		return nil, fmt.Errorf("store refreshed payment: %w", err)
	}

	return updated, nil
}

// Cancel voids a non-terminal payment. A draft that was never sent leaves no
// trace; anything the customer may have seen is kept as a canceled row for
// audit.
func (s *Service) Cancel(ctx context.Context, paymentID int64, reason string) error {
	payment, err := s.getPayment(ctx, paymentID)
	if err != nil {
		return err
	}

	if payment.Status.Terminal() {
		return fmt.Errorf("%w: status is %s", ErrPaymentTerminal, payment.Status)
	}

	if _, err := s.provider.CancelInvoice(ctx, payment.ProviderInvoiceID, reason); err != nil {
		return fmt.Errorf("provider cancel invoice: %w", err)
	}

	if payment.Status == entities.PaymentDraft {
		if err := s.repository.Delete(ctx, payment.ID); err != nil {
			return fmt.Errorf("delete draft payment: %w", err)
		}
		return nil
	}

	canceledStatus := entities.PaymentCanceled
	if _, err := s.repository.Update(ctx, entities.PaymentModify{
		ID:     &payment.ID,
		Status: &canceledStatus,
	}); err != nil {
		return fmt.Errorf("store canceled payment: %w", err)
	}

	return nil
}

// PermanentlyDelete is the explicit admin cleanup of an already-canceled
// payment. Irreversible.
func (s *Service) PermanentlyDelete(ctx context.Context, paymentID int64) error {
	payment, err := s.getPayment(ctx, paymentID)
	if err != nil {
		return err
	}

	if payment.Status != entities.PaymentCanceled {
		return fmt.Errorf("%w: status is %s", ErrPaymentNotCanceled, payment.Status)
	}

	if err := s.repository.Delete(ctx, payment.ID); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}

	return nil
}

func (s *Service) GetByOrder(ctx context.Context, orderID int64) ([]entities.Payment, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	payments, err := s.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get payments: %w", err)
	}

	return payments, nil
}

// MarkOverdue flips locally tracked payments past their due date to overdue.
// Used by the background sweep; the next RefreshStatus still wins.
func (s *Service) MarkOverdue(ctx context.Context) (int64, error) {
	marked, err := s.repository.MarkOverdueWhereDue(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("mark overdue payments: %w", err)
	}

	return marked, nil
}

func (s *Service) getPayment(ctx context.Context, paymentID int64) (*entities.Payment, error) {
	if paymentID <= 0 {
		return nil, ErrInvalidPaymentID
	}

	payment, err := s.repository.GetByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	return payment, nil
}

func buildLineItems(order *entities.Order) []entities.InvoiceLineItem {
	description := order.ServiceDescription
	if description == "" {
		description = "Dumpster rental"
	}

	return []entities.InvoiceLineItem{
		{
			Description: fmt.Sprintf("%s (order %s)", description, order.OrderNumber),
			AmountCents: order.PriceCents(),
		},
	}
}

func totalAmount(lineItems []entities.InvoiceLineItem) int64 {
	var total int64
	for _, item := range lineItems {
		total += item.AmountCents
	}
	return total
}
