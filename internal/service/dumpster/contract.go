//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dumpster_test
package dumpster

import (
	"context"

	"rolloff/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, dumpsterModify entities.DumpsterModify) (int64, error)
	Update(ctx context.Context, dumpsterModify entities.DumpsterModify) (*entities.Dumpster, error)
	GetByID(ctx context.Context, id int64) (*entities.Dumpster, error)
	GetAll(ctx context.Context) ([]entities.Dumpster, error)
}
