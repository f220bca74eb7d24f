package payment_overdue

import (
	"context"
	"time"

	"rolloff/pkg/logger"
)

type Service interface {
	MarkOverdue(ctx context.Context) (int64, error)
}

// PaymentOverdue periodically flips locally tracked payments past their due
// date to overdue, so the admin list stays honest between provider refreshes.
type PaymentOverdue struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewPaymentOverdue(log logger.Logger, service Service, interval time.Duration) *PaymentOverdue {
	return &PaymentOverdue{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (p *PaymentOverdue) TTL() time.Duration {
	return p.interval
}

func (p *PaymentOverdue) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	rowsAffected, err := p.service.MarkOverdue(ctxWithTimeout)

	if rowsAffected > 0 {
		p.log.With(
			logger.NewField("overdue_payments", rowsAffected),
		).Info("payment overdue sweep")
	}

	return err
}

func (p *PaymentOverdue) Info() string {
	return "payment overdue sweep"
}
