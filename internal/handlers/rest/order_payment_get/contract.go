//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_payment_get_test
package order_payment_get

import (
	"context"

	"rolloff/internal/entities"
	"rolloff/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetByOrder(ctx context.Context, orderID int64) ([]entities.Payment, error)
}
