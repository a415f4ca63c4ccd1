package order

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"logistics/internal/entities"
)

type Config struct {
	// CityMatchText — окончание адреса, по которому заказ относится к городу.
	CityMatchText string
	DefaultLimit  int
}

type Service struct {
	repository             Repository
	cargoRepository        CargoRepository
	orderAddressRepository OrderAddressRepository
	deliveryTypeRepository DeliveryTypeRepository
	supervisorRepository   SupervisorRepository
	timeFactory            DeliveryTimeFactory
	txManager              TxManager
	cache                  Cache
	publisher              EventPublisher
	cfg                    Config
}

func New(
	repository Repository,
	cargoRepository CargoRepository,
	orderAddressRepository OrderAddressRepository,
	deliveryTypeRepository DeliveryTypeRepository,
	supervisorRepository SupervisorRepository,
	timeFactory DeliveryTimeFactory,
	txManager TxManager,
	cache Cache,
	publisher EventPublisher,
	cfg Config,
) *Service {
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = entities.DefaultLimit
	}

	return &Service{
		repository:             repository,
		cargoRepository:        cargoRepository,
		orderAddressRepository: orderAddressRepository,
		deliveryTypeRepository: deliveryTypeRepository,
		supervisorRepository:   supervisorRepository,
		timeFactory:            timeFactory,
		txManager:              txManager,
		cache:                  cache,
		publisher:              publisher,
		cfg:                    cfg,
	}
}

// CreateOrder в одной транзакции находит тип доставки и супервайзера, создает
// груз, адрес и сам заказ. При ошибке любого шага ничего не сохраняется.
func (s *Service) CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	if err := validateOrderCreate(orderCreate); err != nil {
		return nil, err
	}

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		deliveryType, err := s.deliveryTypeRepository.GetByID(ctx, orderCreate.DeliveryTypeID)
		if err != nil {
			if errors.Is(err, ErrDeliveryTypeNotFound) {
				return fmt.Errorf("%w: %w: %d", ErrInvalidReference, err, orderCreate.DeliveryTypeID)
			}
			return fmt.Errorf("get delivery type: %w", err)
		}

		supervisor, err := s.supervisorRepository.GetByID(ctx, orderCreate.SupervisorID)
		if err != nil {
			if errors.Is(err, ErrSupervisorNotFound) {
				return fmt.Errorf("%w: %w: %d", ErrInvalidReference, err, orderCreate.SupervisorID)
			}
			return fmt.Errorf("get supervisor: %w", err)
		}

		cargo, err := s.cargoRepository.Create(ctx, orderCreate.Cargo)
		if err != nil {
			return fmt.Errorf("create cargo: %w", err)
		}

		address, err := s.orderAddressRepository.Create(ctx, orderCreate.OrderAddress)
		if err != nil {
			return fmt.Errorf("create order address: %w", err)
		}

		deliveryTime := s.timeFactory.CalculateDeadline(deliveryType.DeliveryDays, time.Now().UTC())
		status := entities.DefaultOrderStatus

		orderModify := entities.OrderModify{
			SenderName:     &orderCreate.SenderName,
			SenderPhone:    &orderCreate.SenderPhone,
			ReceiverName:   &orderCreate.ReceiverName,
			ReceiverPhone:  &orderCreate.ReceiverPhone,
			ShippingFee:    &orderCreate.ShippingFee,
			Note:           orderCreate.Note,
			Status:         &status,
			DeliveryTime:   &deliveryTime,
			CargoID:        &cargo.ID,
			OrderAddressID: &address.ID,
			DeliveryTypeID: &deliveryType.ID,
			SupervisorID:   &supervisor.ID,
		}

		order, err := s.repository.Create(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		order.Cargo = cargo
		order.OrderAddress = address
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.PublishOrderCreated(ctx, created)
	return created, nil
}

// ListOrders возвращает страницу неудаленных заказов, новые первыми, и общее
// число заказов под фильтром.
func (s *Service) ListOrders(ctx context.Context, filter entities.OrderFilter) (*entities.OrderPage, error) {
	statuses := filter.Statuses.Normalize()
	if status, ok := statuses.Invalid(); ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	city, ok := entities.ParseCityFilter(filter.City.String())
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCityFilter, filter.City)
	}

	page, limit, err := s.pagination(filter)
	if err != nil {
		return nil, err
	}

	query := entities.OrderQuery{
		Statuses:      statuses,
		City:          city,
		CityMatchText: s.cfg.CityMatchText,
		Offset:        page * limit,
		Limit:         limit,
	}

	var (
		orders []entities.Order
		total  int64
	)
	err = s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		orders, err = s.repository.List(ctx, query)
		if err != nil {
			return fmt.Errorf("list orders: %w", err)
		}

		total, err = s.repository.Count(ctx, query)
		if err != nil {
			return fmt.Errorf("count orders: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &entities.OrderPage{
		Page:   page,
		Limit:  limit,
		Total:  total,
		Orders: orders,
	}, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	if cached, ok := s.cache.Get(ctx, id); ok {
		return cached, nil
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	s.cache.Set(ctx, order)
	return order, nil
}

// DeleteOrders мягко удаляет заказы ids в одной транзакции, строго по очереди.
// Неизвестный или уже удаленный id отменяет всю пачку.
func (s *Service) DeleteOrders(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return ErrMissingRequiredFields
	}

	ids, err := uniqueIDs(ids)
	if err != nil {
		return err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, id := range ids {
			err := s.repository.SoftDelete(ctx, id)
			if err != nil {
				if errors.Is(err, ErrOrderNotFound) {
					return fmt.Errorf("%w: order %d", ErrInvalidReference, id)
				}
				return fmt.Errorf("soft delete order %d: %w", id, err)
			}
		}

		// до коммита: иначе читатель успеет вернуть удаленный заказ в кеш
		err := s.cache.Invalidate(ctx, ids...)
		if err != nil {
			return fmt.Errorf("invalidate order cache: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.PublishOrdersDeleted(ctx, ids)
	return nil
}

// ChangeStatus переводит живой заказ в status. delivered и cancelled конечные.
func (s *Service) ChangeStatus(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if current.Status == status {
			updated = current
			return nil
		}
		if current.Status.IsFinal() {
			return fmt.Errorf("%w: %s -> %s", ErrStatusTransition, current.Status, status)
		}

		updated, err = s.repository.UpdateStatus(ctx, id, status)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		updated.Cargo = current.Cargo
		updated.OrderAddress = current.OrderAddress

		err = s.cache.Invalidate(ctx, id)
		if err != nil {
			return fmt.Errorf("invalidate order cache: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CountOverdueOrders считает живые заказы с истекшим сроком доставки и не
// конечным статусом.
func (s *Service) CountOverdueOrders(ctx context.Context) (int64, error) {
	count, err := s.repository.CountOverdue(ctx, time.Now().UTC())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("count overdue orders timed out: %w", err)
		}
		return 0, fmt.Errorf("count overdue orders: %w", err)
	}
	return count, nil
}

func (s *Service) pagination(filter entities.OrderFilter) (page, limit int, err error) {
	page = entities.DefaultPage
	limit = s.cfg.DefaultLimit

	if filter.Page != nil {
		page = *filter.Page
	}
	if filter.Limit != nil {
		limit = *filter.Limit
	}

	if page < 0 {
		return 0, 0, fmt.Errorf("%w: page must not be negative", ErrInvalidPagination)
	}
	if limit <= 0 {
		return 0, 0, fmt.Errorf("%w: limit must be positive", ErrInvalidPagination)
	}
	if limit > entities.MaxLimit {
		limit = entities.MaxLimit
	}
	if page > math.MaxInt/limit {
		return 0, 0, fmt.Errorf("%w: page %d is too large", ErrInvalidPagination, page)
	}
	return page, limit, nil
}
