//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"
	"time"

	"rolloff/internal/entities"
)

type Repository interface {
	Acquire(ctx context.Context, dumpsterID, orderID int64, address, homeYardName string, at time.Time) (*entities.Dumpster, error)
	Release(ctx context.Context, orderID int64) (*entities.Dumpster, error)
	GetByCurrentOrderID(ctx context.Context, orderID int64) (*entities.Dumpster, error)
	GetAssignable(ctx context.Context, homeYardName string) ([]entities.Dumpster, error)
	SetCoordinates(ctx context.Context, dumpsterID int64, coords entities.Coordinates) error
}

type OrderGetter interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
}

type Geocoder interface {
	Lookup(ctx context.Context, address string) (*entities.Coordinates, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
