package routing

import (
	"context"
	"fmt"

	"logistics/internal/entities"
)

type Service struct {
	solver RouteSolver
}

func New(solver RouteSolver) *Service {
	return &Service{
		solver: solver,
	}
}

// SolveRouting ждет ответа решателя. Повторов нет: ошибка запуска отдается как есть.
func (s *Service) SolveRouting(ctx context.Context, request entities.RoutingRequest) (entities.Schedule, error) {
	if err := validateRoutingRequest(request); err != nil {
		return nil, err
	}

	schedule, err := s.solver.Solve(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("solve routing: %w", err)
	}

	return schedule, nil
}
