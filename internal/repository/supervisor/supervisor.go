package supervisor

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"logistics/internal/entities"
	"logistics/internal/service/order"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Supervisor, error) {
	query := `SELECT id, name, phone, email
		FROM supervisors
		WHERE id = $1`

	var supervisor entities.Supervisor
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&supervisor.ID,
			&supervisor.Name,
			&supervisor.Phone,
			&supervisor.Email,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrSupervisorNotFound
		}
		return nil, fmt.Errorf("unexpected supervisor repository getbyid error: %w", err)
	}

	return &supervisor, nil
}
