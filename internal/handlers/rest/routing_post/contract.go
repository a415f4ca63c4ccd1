//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=routing_post_test
package routing_post

import (
	"context"

	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SolveRouting(ctx context.Context, request entities.RoutingRequest) (entities.Schedule, error)
}
