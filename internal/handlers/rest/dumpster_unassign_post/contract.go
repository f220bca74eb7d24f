//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dumpster_unassign_post_test
package dumpster_unassign_post

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
	Unassign(ctx context.Context, orderID int64) (*entities.DumpsterRelease, error)
}
