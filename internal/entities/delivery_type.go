package entities

import "github.com/shopspring/decimal"

// DeliveryType — справочник тарифов. DeliveryDays прибавляется к дате создания
// и дает срок доставки заказа.
type DeliveryType struct {
	ID           int64
	Name         string
	BaseFee      decimal.Decimal
	FeePerKg     decimal.Decimal
	DeliveryDays int
}
