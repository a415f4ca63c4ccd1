package order_cache

import (
	"time"

	"github.com/shopspring/decimal"

	"logistics/internal/entities"
)

type orderCache struct {
	ID             int64              `json:"id"`
	SenderName     string             `json:"sender_name"`
	SenderPhone    string             `json:"sender_phone"`
	ReceiverName   string             `json:"receiver_name"`
	ReceiverPhone  string             `json:"receiver_phone"`
	ShippingFee    decimal.Decimal    `json:"shipping_fee"`
	Note           *string            `json:"note,omitempty"`
	Status         string             `json:"status"`
	DeliveryTime   time.Time          `json:"delivery_time"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	CargoID        int64              `json:"cargo_id"`
	OrderAddressID int64              `json:"order_address_id"`
	DeliveryTypeID int64              `json:"delivery_type_id"`
	SupervisorID   int64              `json:"supervisor_id"`
	Cargo          *cargoCache        `json:"cargo,omitempty"`
	OrderAddress   *orderAddressCache `json:"order_address,omitempty"`
}

type cargoCache struct {
	Name      string    `json:"name"`
	Weight    float64   `json:"weight"`
	Dimension float64   `json:"dimension"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type orderAddressCache struct {
	Address   string    `json:"address"`
	Longitude float64   `json:"longitude"`
	Latitude  float64   `json:"latitude"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func fromDomain(o *entities.Order) *orderCache {
	cached := &orderCache{
		ID:             o.ID,
		SenderName:     o.SenderName,
		SenderPhone:    o.SenderPhone,
		ReceiverName:   o.ReceiverName,
		ReceiverPhone:  o.ReceiverPhone,
		ShippingFee:    o.ShippingFee,
		Note:           o.Note,
		Status:         o.Status.String(),
		DeliveryTime:   o.DeliveryTime,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		CargoID:        o.CargoID,
		OrderAddressID: o.OrderAddressID,
		DeliveryTypeID: o.DeliveryTypeID,
		SupervisorID:   o.SupervisorID,
	}

	if o.Cargo != nil {
		cached.Cargo = &cargoCache{
			Name:      o.Cargo.Name,
			Weight:    o.Cargo.Weight,
			Dimension: o.Cargo.Dimension,
			CreatedAt: o.Cargo.CreatedAt,
			UpdatedAt: o.Cargo.UpdatedAt,
		}
	}
	if o.OrderAddress != nil {
		cached.OrderAddress = &orderAddressCache{
			Address:   o.OrderAddress.Address,
			Longitude: o.OrderAddress.Longitude,
			Latitude:  o.OrderAddress.Latitude,
			CreatedAt: o.OrderAddress.CreatedAt,
			UpdatedAt: o.OrderAddress.UpdatedAt,
		}
	}
	return cached
}

func (c *orderCache) toDomain() *entities.Order {
	order := &entities.Order{
		ID:             c.ID,
		SenderName:     c.SenderName,
		SenderPhone:    c.SenderPhone,
		ReceiverName:   c.ReceiverName,
		ReceiverPhone:  c.ReceiverPhone,
		ShippingFee:    c.ShippingFee,
		Note:           c.Note,
		Status:         entities.OrderStatusType(c.Status),
		DeliveryTime:   c.DeliveryTime,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
		CargoID:        c.CargoID,
		OrderAddressID: c.OrderAddressID,
		DeliveryTypeID: c.DeliveryTypeID,
		SupervisorID:   c.SupervisorID,
	}

	if c.Cargo != nil {
		order.Cargo = &entities.Cargo{
			ID:        c.CargoID,
			Name:      c.Cargo.Name,
			Weight:    c.Cargo.Weight,
			Dimension: c.Cargo.Dimension,
			CreatedAt: c.Cargo.CreatedAt,
			UpdatedAt: c.Cargo.UpdatedAt,
		}
	}
	if c.OrderAddress != nil {
		order.OrderAddress = &entities.OrderAddress{
			ID:        c.OrderAddressID,
			Address:   c.OrderAddress.Address,
			Longitude: c.OrderAddress.Longitude,
			Latitude:  c.OrderAddress.Latitude,
			CreatedAt: c.OrderAddress.CreatedAt,
			UpdatedAt: c.OrderAddress.UpdatedAt,
		}
	}
	return order
}
