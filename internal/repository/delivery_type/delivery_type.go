package delivery_type

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"logistics/internal/entities"
	"logistics/internal/service/order"
)

type DeliveryTypeDB struct {
	ID           int64           `db:"id"`
	Name         string          `db:"name"`
	BaseFee      decimal.Decimal `db:"base_fee"`
	FeePerKg     decimal.Decimal `db:"fee_per_kg"`
	DeliveryDays int             `db:"delivery_days"`
}

func ToDomain(d *DeliveryTypeDB) *entities.DeliveryType {
	if d == nil {
		return nil
	}
	return &entities.DeliveryType{
		ID:           d.ID,
		Name:         d.Name,
		BaseFee:      d.BaseFee,
		FeePerKg:     d.FeePerKg,
		DeliveryDays: d.DeliveryDays,
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

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DeliveryType, error) {
	query := `
		SELECT id, name, base_fee, fee_per_kg, delivery_days
		FROM delivery_types
		WHERE id = $1
	`

	var deliveryTypeDB DeliveryTypeDB
	err := r.querier.Get(ctx, &deliveryTypeDB, query, id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, order.ErrDeliveryTypeNotFound
		}
		return nil, fmt.Errorf("unexpected delivery type repository getbyid error: %w", err)
	}

	return ToDomain(&deliveryTypeDB), nil
}
