//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quote_promote_post_test
package quote_promote_post

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
	Promote(ctx context.Context, quoteID int64, overrides entities.QuoteOverrides) (*entities.Order, error)
}
