package quote

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"
	"rolloff/internal/entities"
	"rolloff/pkg/logger"
)

type Service struct {
	repository  Repository
	orders      OrderCreator
	orderNumber OrderNumberGateway
	log         logger.Logger
}

func New(
	repository Repository,
	orders OrderCreator,
	orderNumber OrderNumberGateway,
	log logger.Logger,
) *Service {
	return &Service{
		repository:  repository,
		orders:      orders,
		orderNumber: orderNumber,
		log:         log,
	}
}

// Promote converts a quote into a scheduled order. Overrides carry the
// admin's unsaved edits and win over stored quote values. The order number is
// allocated only after all preconditions pass, so a failed promotion never
// burns a number.
//
// Marking the quote accepted afterwards is best-effort: once the order
// exists it is not rolled back over a quote bookkeeping failure.
func (s *Service) Promote(ctx context.Context, quoteID int64, overrides entities.QuoteOverrides) (*entities.Order, error) {
	if quoteID <= 0 {
		return nil, ErrInvalidQuoteID
	}

	quote, err := s.repository.GetByID(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}

	if quote.Status == entities.QuoteAccepted {
		return nil, ErrQuoteAlreadyAccepted
	}

	dropoffDate := quote.DropoffDate
	if overrides.DropoffDate != nil {
		dropoffDate = overrides.DropoffDate
	}
	dropoffTime := quote.DropoffTime
	if overrides.DropoffTime != nil {
		dropoffTime = overrides.DropoffTime
	}

	if dropoffDate == nil {
		return nil, ErrMissingDropoffDate
	}
	if dropoffTime == nil || *dropoffTime == "" {
		return nil, ErrMissingDropoffTime
	}

	pickupDate := quote.PickupDate
	if overrides.PickupDate != nil {
		pickupDate = overrides.PickupDate
	}
	quotedPrice := quote.QuotedPriceCents
	if overrides.QuotedPriceCents != nil {
		quotedPrice = *overrides.QuotedPriceCents
	}

	orderNumber, err := s.orderNumber.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocate order number: %w", err)
	}

	scheduledStatus := entities.OrderScheduled
	orderModify := entities.OrderModify{
		OrderNumber: &orderNumber,
		QuoteID:     &quote.ID,

		CustomerName:  overlay(overrides.CustomerName, quote.CustomerName),
		CustomerPhone: overlay(overrides.CustomerPhone, quote.CustomerPhone),
		CustomerEmail: overlay(overrides.CustomerEmail, quote.CustomerEmail),
		Address:       overlay(overrides.Address, quote.Address),
		City:          overlay(overrides.City, quote.City),
		State:         overlay(overrides.State, quote.State),
		Zip:           overlay(overrides.Zip, quote.Zip),

		ServiceDescription: overlay(overrides.ServiceDescription, quote.ServiceDescription),

		Status:     &scheduledStatus,
		AssignedTo: overrides.AssignedTo,

		ScheduledDeliveryDate: dropoffDate,
		ScheduledPickupDate:   pickupDate,

		QuotedPriceCents: &quotedPrice,
		InternalNotes:    overlay(overrides.Notes, quote.Notes),
	}

	order, err := s.orders.Create(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("create order from quote: %w", err)
	}

	acceptedStatus := entities.QuoteAccepted
	_, err = s.repository.Update(ctx, entities.QuoteModify{
		ID:     &quote.ID,
		Status: &acceptedStatus,
	})
	if err != nil {
		s.log.With(
			logger.NewField("quote_id", quote.ID),
			logger.NewField("order_id", order.ID),
			logger.NewField("error", err),
		).Warn("order created but quote not marked accepted")
	}

	return order, nil
}

// overlay prefers the caller's unsaved edit over the stored quote value.
func overlay(override *string, stored string) *string {
	if override != nil {
		return override
	}
	return &stored
}

func (s *Service) CreateQuote(ctx context.Context, quoteModify entities.QuoteModify) (*entities.Quote, error) {
	if quoteModify.CustomerName == nil ||
		quoteModify.CustomerPhone == nil ||
		quoteModify.Address == nil ||
		quoteModify.ServiceDescription == nil {
		return nil, ErrMissingRequiredFields
	}

	if quoteModify.Status == nil {
		quoteModify.Status = pointer.To(entities.QuotePending)
	}

	quote, err := s.repository.Create(ctx, quoteModify)
	if err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}

	return quote, nil
}

func (s *Service) UpdateQuote(ctx context.Context, quoteModify entities.QuoteModify) (*entities.Quote, error) {
	if quoteModify.ID == nil || *quoteModify.ID <= 0 {
		return nil, ErrInvalidQuoteID
	}

	quote, err := s.repository.Update(ctx, quoteModify)
	if err != nil {
		return nil, fmt.Errorf("update quote: %w", err)
	}

	return quote, nil
}

func (s *Service) GetQuotes(ctx context.Context, status *entities.QuoteStatusType) ([]entities.Quote, error) {
	quotes, err := s.repository.GetAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("get quotes: %w", err)
	}

	return quotes, nil
}
