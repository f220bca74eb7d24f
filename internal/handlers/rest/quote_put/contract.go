//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quote_put_test
package quote_put

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
	UpdateQuote(ctx context.Context, quoteModifyEntity entities.QuoteModify) (*entities.Quote, error)
}
