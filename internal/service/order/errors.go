package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrInvalidCityFilter     = errors.New("invalid city filter")
	ErrInvalidPagination     = errors.New("invalid pagination")
	ErrInvalidShippingFee    = errors.New("invalid shipping fee")
	ErrInvalidCargo          = errors.New("invalid cargo")

	// ErrInvalidReference: тип доставки, супервайзер или заказ, на который ссылается запись, не существует.
	ErrInvalidReference = errors.New("invalid reference")
	ErrOrderNotFound    = errors.New("order not found")
	ErrStatusTransition = errors.New("order status cannot be changed")

	ErrDeliveryTypeNotFound = errors.New("delivery type not found")
	ErrSupervisorNotFound   = errors.New("supervisor not found")
)
