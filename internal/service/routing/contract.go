//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=routing_test
package routing

import (
	"context"

	"logistics/internal/entities"
)

// RouteSolver строит расписание для задачи маршрутизации. Реализация может
// работать вне процесса, поэтому внутри транзакции БД ее не вызывают.
type RouteSolver interface {
	Solve(ctx context.Context, request entities.RoutingRequest) (entities.Schedule, error)
}
