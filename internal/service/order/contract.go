//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"rolloff/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetAll(ctx context.Context, status *entities.OrderStatusType) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, update entities.OrderStatusUpdate) (*entities.Order, error)
	Delete(ctx context.Context, id int64) error
}

type AssignmentService interface {
	GetAssigned(ctx context.Context, orderID int64) (*entities.Dumpster, error)
	Unassign(ctx context.Context, orderID int64) (*entities.DumpsterRelease, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
