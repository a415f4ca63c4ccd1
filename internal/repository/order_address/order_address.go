package order_address

import (
	"context"
	"fmt"
	"time"

	"logistics/internal/entities"
)

type OrderAddressDB struct {
	ID        int64
	Address   string
	Longitude float64
	Latitude  float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ToDomain(a *OrderAddressDB) *entities.OrderAddress {
	if a == nil {
		return nil
	}
	return &entities.OrderAddress{
		ID:        a.ID,
		Address:   a.Address,
		Longitude: a.Longitude,
		Latitude:  a.Latitude,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
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

func (r *Repository) Create(ctx context.Context, addressCreate entities.OrderAddressCreate) (*entities.OrderAddress, error) {
	query := `
		INSERT INTO order_addresses (address, longitude, latitude)
		VALUES ($1, $2, $3)
		RETURNING id, address, longitude, latitude, created_at, updated_at
	`

	var addressDB OrderAddressDB
	err := r.querier.QueryRow(
		ctx,
		query,
		addressCreate.Address,
		addressCreate.Longitude,
		addressCreate.Latitude,
	).Scan(
		&addressDB.ID,
		&addressDB.Address,
		&addressDB.Longitude,
		&addressDB.Latitude,
		&addressDB.CreatedAt,
		&addressDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order address repository create error: %w", err)
	}

	return ToDomain(&addressDB), nil
}
