package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID             int64
	SenderName     string
	SenderPhone    string
	ReceiverName   string
	ReceiverPhone  string
	ShippingFee    decimal.Decimal
	Note           *string
	Status         OrderStatusType
	DeliveryTime   time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
	CargoID        int64
	OrderAddressID int64
	DeliveryTypeID int64
	SupervisorID   int64

	Cargo        *Cargo
	OrderAddress *OrderAddress
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderInTransit OrderStatusType = "in_transit"
	OrderDelivered OrderStatusType = "delivered"
	OrderCancelled OrderStatusType = "cancelled"
)

const DefaultOrderStatus = OrderPending

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderInTransit, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// IsFinal: после этого статуса переходов нет.
func (s OrderStatusType) IsFinal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// OrderCreate — все, что клиент передает для создания заказа.
type OrderCreate struct {
	SenderName     string
	SenderPhone    string
	ReceiverName   string
	ReceiverPhone  string
	ShippingFee    decimal.Decimal
	Note           *string
	Cargo          CargoCreate
	OrderAddress   OrderAddressCreate
	DeliveryTypeID int64
	SupervisorID   int64
}

// OrderModify — колонки новой строки заказа после разрешения ссылок.
type OrderModify struct {
	ID             *int64
	SenderName     *string
	SenderPhone    *string
	ReceiverName   *string
	ReceiverPhone  *string
	ShippingFee    *decimal.Decimal
	Note           *string
	Status         *OrderStatusType
	DeliveryTime   *time.Time
	CargoID        *int64
	OrderAddressID *int64
	DeliveryTypeID *int64
	SupervisorID   *int64
}
