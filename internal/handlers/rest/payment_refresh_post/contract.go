//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_refresh_post_test
package payment_refresh_post

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
	RefreshStatus(ctx context.Context, paymentID int64) (*entities.Payment, error)
}
