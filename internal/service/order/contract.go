//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	List(ctx context.Context, query entities.OrderQuery) ([]entities.Order, error)
	Count(ctx context.Context, query entities.OrderQuery) (int64, error)
	SoftDelete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.Order, error)
	CountOverdue(ctx context.Context, now time.Time) (int64, error)
}

type CargoRepository interface {
	Create(ctx context.Context, cargoCreate entities.CargoCreate) (*entities.Cargo, error)
}

type OrderAddressRepository interface {
	Create(ctx context.Context, addressCreate entities.OrderAddressCreate) (*entities.OrderAddress, error)
}

type DeliveryTypeRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.DeliveryType, error)
}

type SupervisorRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Supervisor, error)
}

type DeliveryTimeFactory interface {
	CalculateDeadline(deliveryDays int, baseTime time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Cache: чтение и заполнение без гарантий, реализация сама логирует сбои и
// отдает промах. Set не перезаписывает надгробие от Invalidate, а ошибка
// Invalidate возвращается, чтобы откатить транзакцию.
type Cache interface {
	Get(ctx context.Context, id int64) (*entities.Order, bool)
	Set(ctx context.Context, order *entities.Order)
	Invalidate(ctx context.Context, ids ...int64) error
}

// EventPublisher вызывается только после коммита, результат не ждем.
type EventPublisher interface {
	PublishOrderCreated(ctx context.Context, order *entities.Order)
	PublishOrdersDeleted(ctx context.Context, ids []int64)
}
