//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dumpster_put_test
package dumpster_put

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
	UpdateDumpster(ctx context.Context, dumpsterModifyEntity entities.DumpsterModify) (*entities.Dumpster, error)
}
