package order

import (
	"fmt"
	"strings"

	"logistics/internal/entities"
)

func validateOrderCreate(orderCreate entities.OrderCreate) error {
	if isBlank(orderCreate.SenderName) ||
		isBlank(orderCreate.SenderPhone) ||
		isBlank(orderCreate.ReceiverName) ||
		isBlank(orderCreate.ReceiverPhone) ||
		isBlank(orderCreate.Cargo.Name) ||
		isBlank(orderCreate.OrderAddress.Address) {
		return ErrMissingRequiredFields
	}

	// id <= 0 не может ссылаться на строку, как и отсутствующий справочник
	if orderCreate.DeliveryTypeID <= 0 {
		return fmt.Errorf("%w: delivery type %d", ErrInvalidReference, orderCreate.DeliveryTypeID)
	}
	if orderCreate.SupervisorID <= 0 {
		return fmt.Errorf("%w: supervisor %d", ErrInvalidReference, orderCreate.SupervisorID)
	}

	if orderCreate.ShippingFee.IsNegative() {
		return ErrInvalidShippingFee
	}

	if orderCreate.Cargo.Weight < 0 || orderCreate.Cargo.Dimension < 0 {
		return ErrInvalidCargo
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func uniqueIDs(ids []int64) ([]int64, error) {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, ErrInvalidOrderID
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result, nil
}
