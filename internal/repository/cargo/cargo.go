package cargo

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/order"
)

type CargoDB struct {
	ID        int64
	Name      string
	Weight    float64
	Dimension float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ToDomain(c *CargoDB) *entities.Cargo {
	if c == nil {
		return nil
	}
	return &entities.Cargo{
		ID:        c.ID,
		Name:      c.Name,
		Weight:    c.Weight,
		Dimension: c.Dimension,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, cargoCreate entities.CargoCreate) (*entities.Cargo, error) {
	query := `
		INSERT INTO cargos (name, weight, dimension)
		VALUES ($1, $2, $3)
		RETURNING id, name, weight, dimension, created_at, updated_at
	`

	var cargoDB CargoDB
	err := r.querier.QueryRow(
		ctx,
		query,
		cargoCreate.Name,
		cargoCreate.Weight,
		cargoCreate.Dimension,
	).Scan(
		&cargoDB.ID,
		&cargoDB.Name,
		&cargoDB.Weight,
		&cargoDB.Dimension,
		&cargoDB.CreatedAt,
		&cargoDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation) {
			return nil, fmt.Errorf("%w: %w", order.ErrInvalidCargo, err)
		}
		return nil, fmt.Errorf("unexpected cargo repository create error: %w", err)
	}

	return ToDomain(&cargoDB), nil
}
