package order

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, sender_name, sender_phone, receiver_name, receiver_phone, shipping_fee, note,
	status, delivery_time, cargo_id, order_address_id, delivery_type_id, supervisor_id,
	created_at, updated_at, deleted_at`

var rowColumns = []string{
	"o.id", "o.sender_name", "o.sender_phone", "o.receiver_name", "o.receiver_phone",
	"o.shipping_fee", "o.note", "o.status", "o.delivery_time",
	"o.cargo_id", "o.order_address_id", "o.delivery_type_id", "o.supervisor_id",
	"o.created_at", "o.updated_at", "o.deleted_at",
	"c.name AS cargo_name", "c.weight AS cargo_weight", "c.dimension AS cargo_dimension",
	"c.created_at AS cargo_created_at", "c.updated_at AS cargo_updated_at",
	"a.address", "a.longitude AS address_longitude", "a.latitude AS address_latitude",
	"a.created_at AS address_created_at", "a.updated_at AS address_updated_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	orderModifyDB := FromDomainModify(&orderModify)
	if orderModifyDB.Status == nil {
		status := entities.DefaultOrderStatus.String()
		orderModifyDB.Status = &status
	}

	query := `
		INSERT INTO orders (
			sender_name, sender_phone, receiver_name, receiver_phone, shipping_fee, note,
			status, delivery_time, cargo_id, order_address_id, delivery_type_id, supervisor_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + orderColumns

	var orderDB OrderDB
	err := r.querier.Get(
		ctx,
		&orderDB,
		query,
		orderModifyDB.SenderName,
		orderModifyDB.SenderPhone,
		orderModifyDB.ReceiverName,
		orderModifyDB.ReceiverPhone,
		orderModifyDB.ShippingFee,
		orderModifyDB.Note,
		orderModifyDB.Status,
		orderModifyDB.DeliveryTime,
		orderModifyDB.CargoID,
		orderModifyDB.OrderAddressID,
		orderModifyDB.DeliveryTypeID,
		orderModifyDB.SupervisorID,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, fmt.Errorf("%w: %w", order.ErrInvalidReference, err)
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query, args, err := r.selectRows().
		Where(sq.Eq{"o.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	var row OrderRowDB
	err = r.querier.Get(ctx, &row, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return RowToDomain(&row), nil
}

func (r *Repository) List(ctx context.Context, orderQuery entities.OrderQuery) ([]entities.Order, error) {
	builder := applyFilters(r.selectRows(), orderQuery).
		OrderBy("o.created_at DESC", "o.id DESC").
		Limit(uint64(orderQuery.Limit)).
		Offset(uint64(orderQuery.Offset))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows := make([]OrderRowDB, 0, orderQuery.Limit)
	err = r.querier.Select(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return RowsToDomain(rows), nil
}

func (r *Repository) Count(ctx context.Context, orderQuery entities.OrderQuery) (int64, error) {
	builder := qb.
		Select("COUNT(*)").
		From("orders o").
		Join("order_addresses a ON a.id = o.order_address_id").
		Where(sq.Eq{"o.deleted_at": nil})

	query, args, err := applyFilters(builder, orderQuery).ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	return total, nil
}

// SoftDelete проставляет deleted_at живому заказу. Отсутствующий или уже удаленный заказ дает ErrOrderNotFound.
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	query := `
		UPDATE orders
		SET deleted_at = NOW(),
		    updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository soft delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.Order, error) {
	query, args, err := qb.
		Update("orders").
		Set("status", status.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}).
		Suffix("RETURNING " + orderColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.Get(ctx, &orderDB, query, args...)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

// CountOverdue считает живые заказы с истекшим сроком доставки в статусах pending и in_transit.
func (r *Repository) CountOverdue(ctx context.Context, now time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM orders
		WHERE deleted_at IS NULL
		  AND status IN ($1, $2)
		  AND delivery_time < $3
	`

	var count int64
	err := r.querier.QueryRow(
		ctx,
		query,
		entities.OrderPending.String(),
		entities.OrderInTransit.String(),
		now,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository count overdue error: %w", err)
	}

	return count, nil
}

func (r *Repository) selectRows() sq.SelectBuilder {
	return qb.
		Select(rowColumns...).
		From("orders o").
		Join("cargos c ON c.id = o.cargo_id").
		Join("order_addresses a ON a.id = o.order_address_id").
		Where(sq.Eq{"o.deleted_at": nil})
}

func applyFilters(builder sq.SelectBuilder, orderQuery entities.OrderQuery) sq.SelectBuilder {
	if len(orderQuery.Statuses) > 0 {
		builder = builder.Where(sq.Eq{"o.status": orderQuery.Statuses.Strings()})
	}

	pattern := "%" + repository.EscapeLike(orderQuery.CityMatchText)
	switch orderQuery.City {
	case entities.CityMatch:
		builder = builder.Where(sq.Like{"a.address": pattern})
	case entities.CityExclude:
		builder = builder.Where(sq.NotLike{"a.address": pattern})
	}

	return builder
}
