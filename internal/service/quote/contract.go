//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=quote_test
package quote

import (
	"context"

	"rolloff/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, quoteModify entities.QuoteModify) (*entities.Quote, error)
	GetByID(ctx context.Context, id int64) (*entities.Quote, error)
	GetAll(ctx context.Context, status *entities.QuoteStatusType) ([]entities.Quote, error)
	Update(ctx context.Context, quoteModify entities.QuoteModify) (*entities.Quote, error)
}

type OrderCreator interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}

// OrderNumberGateway allocates the next human-readable order number. The call
// is atomic on the remote side and must happen at most once per promotion.
type OrderNumberGateway interface {
	Next(ctx context.Context) (string, error)
}
