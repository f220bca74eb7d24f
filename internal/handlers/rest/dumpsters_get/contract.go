//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dumpsters_get_test
package dumpsters_get

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
	GetDumpsters(ctx context.Context) ([]entities.Dumpster, error)
}

type AssignmentService interface {
	ListAssignable(ctx context.Context) ([]entities.Dumpster, error)
}
