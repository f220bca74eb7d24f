//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_delete_test
package payment_delete

import (
	"context"

	"rolloff/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	PermanentlyDelete(ctx context.Context, paymentID int64) error
}
