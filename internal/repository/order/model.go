package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID             int64           `db:"id"`
	SenderName     string          `db:"sender_name"`
	SenderPhone    string          `db:"sender_phone"`
	ReceiverName   string          `db:"receiver_name"`
	ReceiverPhone  string          `db:"receiver_phone"`
	ShippingFee    decimal.Decimal `db:"shipping_fee"`
	Note           *string         `db:"note"`
	Status         string          `db:"status"`
	DeliveryTime   time.Time       `db:"delivery_time"`
	CargoID        int64           `db:"cargo_id"`
	OrderAddressID int64           `db:"order_address_id"`
	DeliveryTypeID int64           `db:"delivery_type_id"`
	SupervisorID   int64           `db:"supervisor_id"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	DeletedAt      *time.Time      `db:"deleted_at"`
}

// OrderRowDB — строка выборки: заказ вместе с грузом и адресом.
type OrderRowDB struct {
	OrderDB

	CargoName      string    `db:"cargo_name"`
	CargoWeight    float64   `db:"cargo_weight"`
	CargoDimension float64   `db:"cargo_dimension"`
	CargoCreatedAt time.Time `db:"cargo_created_at"`
	CargoUpdatedAt time.Time `db:"cargo_updated_at"`

	Address          string    `db:"address"`
	AddressLongitude float64   `db:"address_longitude"`
	AddressLatitude  float64   `db:"address_latitude"`
	AddressCreatedAt time.Time `db:"address_created_at"`
	AddressUpdatedAt time.Time `db:"address_updated_at"`
}

type OrderModifyDB struct {
	ID             *int64
	SenderName     *string
	SenderPhone    *string
	ReceiverName   *string
	ReceiverPhone  *string
	ShippingFee    *decimal.Decimal
	Note           *string
	Status         *string
	DeliveryTime   *time.Time
	CargoID        *int64
	OrderAddressID *int64
	DeliveryTypeID *int64
	SupervisorID   *int64
}
